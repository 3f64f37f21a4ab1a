package portal

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tcac/app/models/payment"
	"tcac/app/repositories"
	"tcac/app/requests"
	"tcac/pkg/config"
	"tcac/pkg/payment/types"
	"tcac/pkg/payment/utils"
	"tcac/pkg/response"
)

// PaymentController 用户缴费控制器
type PaymentController struct {
	paymentRepo  *repositories.PaymentRepository
	settingsRepo *repositories.SettingsRepository
	gateways     map[types.Provider]types.Service
}

// NewPaymentController 创建用户缴费控制器
// gateways 为在线支付网关，未配置的渠道传 nil 即可
func NewPaymentController(gateways map[types.Provider]types.Service) *PaymentController {
	if gateways == nil {
		gateways = map[types.Provider]types.Service{}
	}
	return &PaymentController{
		paymentRepo:  repositories.NewPaymentRepository(),
		settingsRepo: repositories.NewSettingsRepository(),
		gateways:     gateways,
	}
}

// Store 提交缴费
// POST /api/payments
// 缴费通道关闭或截止时间已过时返回 403，消息取配置里的提示语
func (pc *PaymentController) Store(c *gin.Context) {
	setting, err := pc.settingsRepo.Get(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取门户配置失败")
		return
	}
	if setting.PaymentClosed(time.Now()) {
		response.Abort403(c, setting.PaymentClosedMessage)
		return
	}

	request, err := requests.ValidatePaymentSubmit(c)
	if err != nil {
		var verr requests.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Map())
			return
		}
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	if request.Provider == string(payment.ProviderOffline) {
		pc.storeOffline(c, request)
		return
	}
	pc.storeOnline(c, request)
}

// storeOffline 线下凭证缴费，直接落库为待审核
func (pc *PaymentController) storeOffline(c *gin.Context, request *requests.PaymentSubmitRequest) {
	transactionDate, _ := request.ParsedTransactionDate()

	record := payment.Payment{
		OrderNo:         utils.GenerateOrderNo(),
		UserID:          request.UserID,
		Provider:        string(payment.ProviderOffline),
		Amount:          request.Amount,
		ReceiptURL:      request.ReceiptURL,
		TransactionDate: transactionDate,
		Status:          string(payment.StatusPending),
	}
	if err := pc.paymentRepo.Create(c.Request.Context(), &record); err != nil {
		response.Abort500(c, "提交缴费失败")
		return
	}

	response.Created(c, gin.H{"payment": record})
}

// storeOnline 在线支付，由网关创建待支付订单并返回支付跳转信息
func (pc *PaymentController) storeOnline(c *gin.Context, request *requests.PaymentSubmitRequest) {
	provider := types.Provider(request.Provider)
	gateway, ok := pc.gateways[provider]
	if !ok || gateway == nil {
		response.Abort400(c, "该支付渠道暂未开通")
		return
	}

	result, err := gateway.CreatePayment(c.Request.Context(), &types.Request{
		UserID:      request.UserID,
		Amount:      request.Amount,
		Provider:    provider,
		ReturnURL:   request.ReturnURL,
		NotifyURL:   config.GetString("payment.notify_url"),
		Description: config.GetString("app.name") + " 参会缴费",
	})
	if err != nil {
		response.Abort500(c, "创建支付订单失败")
		return
	}

	response.Created(c, gin.H{"order": result})
}

// Index 获取指定用户的缴费记录
// GET /api/users/:user_id/payments
func (pc *PaymentController) Index(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.Abort400(c, "用户 ID 不能为空")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	payments, total, err := pc.paymentRepo.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Abort500(c, "获取缴费记录失败")
		return
	}

	response.Data(c, gin.H{
		"payments": payments,
		"meta": gin.H{
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		},
	})
}
