// Package admin 管理端接口
package admin

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tcac/app/models/payment"
	"tcac/app/repositories"
	"tcac/app/requests"
	"tcac/pkg/logger"
	"tcac/pkg/notify"
	"tcac/pkg/queue"
	"tcac/pkg/redis"
	"tcac/pkg/response"
)

// 状态统计的缓存键和有效期
const (
	statusCountsCacheKey = "payments:status_counts"
	statusCountsCacheTTL = time.Minute
)

// PaymentController 缴费审核控制器
type PaymentController struct {
	paymentRepo  *repositories.PaymentRepository
	queueService *queue.QueueService
}

// NewPaymentController 创建缴费审核控制器
func NewPaymentController(queueService *queue.QueueService) *PaymentController {
	return &PaymentController{
		paymentRepo:  repositories.NewPaymentRepository(),
		queueService: queueService,
	}
}

// Index 获取缴费记录列表
// GET /api/admin/payments?status=&search=&page=&page_size=
func (pc *PaymentController) Index(c *gin.Context) {
	// 筛选参数
	status := c.Query("status")
	if status != "" && !payment.ValidStatus(status) {
		response.Abort400(c, "无效的审核状态筛选")
		return
	}

	// 分页参数
	page, pageSize := parsePagination(c)

	filter := repositories.PaymentFilter{
		Status: status,
		Search: c.Query("search"),
	}

	payments, total, err := pc.paymentRepo.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.Abort500(c, "获取缴费列表失败")
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

// Counts 获取各状态的记录总数
// GET /api/admin/payments/counts
// 统计基于全量数据，与列表筛选无关，用于筛选按钮角标
func (pc *PaymentController) Counts(c *gin.Context) {
	// 优先读缓存
	if redis.Redis != nil {
		if cached := redis.Redis.Get(statusCountsCacheKey); cached != "" {
			var counts map[string]int64
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				response.Data(c, gin.H{"counts": counts})
				return
			}
		}
	}

	counts, err := pc.paymentRepo.CountByStatus(c.Request.Context())
	if err != nil {
		response.Abort500(c, "获取状态统计失败")
		return
	}

	if redis.Redis != nil {
		if payload, err := json.Marshal(counts); err == nil {
			redis.Redis.Set(statusCountsCacheKey, string(payload), statusCountsCacheTTL)
		}
	}

	response.Data(c, gin.H{"counts": counts})
}

// UpdateStatus 审核缴费记录
// POST /api/admin/update-payment-status
// 状态和审核意见原子写入；终态记录和过期版本都会收到 409
func (pc *PaymentController) UpdateStatus(c *gin.Context) {
	request, err := requests.ValidatePaymentDecision(c)
	if err != nil {
		var verr requests.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Map())
			return
		}
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	seenUpdatedAt, _ := request.SeenUpdatedAt()

	// 审核人由网关鉴权后写入上下文，缺省回退为 admin
	decidedBy := c.GetString("user_id")
	if decidedBy == "" {
		decidedBy = "admin"
	}

	decided, err := pc.paymentRepo.Decide(
		c.Request.Context(),
		request.PaymentID,
		request.Status,
		request.AdminComment,
		decidedBy,
		seenUpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPaymentNotFound):
			response.Abort404(c, "缴费记录不存在")
		case errors.Is(err, repositories.ErrAlreadyDecided):
			response.Abort409(c, "该记录已完成审核，不能重复操作")
		case errors.Is(err, repositories.ErrStaleDecision):
			response.Abort409(c, "记录已被其他管理员修改，请刷新后重试")
		default:
			response.Abort500(c, "审核操作失败")
		}
		return
	}

	// 角标统计已变化，让缓存过期
	if redis.Redis != nil {
		redis.Redis.Del(statusCountsCacheKey)
	}

	// 下游通知（余额调整、邮件）异步投递，失败不影响审核结果
	pc.enqueueDecisionEvent(c, decided)

	response.Data(c, gin.H{"payment": decided})
}

// enqueueDecisionEvent 将审核事件推入通知队列
func (pc *PaymentController) enqueueDecisionEvent(c *gin.Context, p *payment.Payment) {
	if pc.queueService == nil {
		return
	}

	decidedAt := time.Now()
	if p.DecidedAt != nil {
		decidedAt = *p.DecidedAt
	}

	task := &queue.NotifyTask{
		ID: uuid.New().String(),
		Event: notify.DecisionEvent{
			PaymentID:    p.ID,
			UserID:       p.UserID,
			Amount:       p.Amount,
			Status:       p.Status,
			AdminComment: p.AdminComment,
			DecidedBy:    p.DecidedBy,
			DecidedAt:    decidedAt,
		},
		Status:    queue.TaskPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := pc.queueService.PushTask(c.Request.Context(), task); err != nil {
		// 只记录，不中断响应
		logger.ErrorString("缴费审核", "投递通知任务失败", err.Error())
	}
}

// parsePagination 解析分页参数，默认每页 10 条，上限 100
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
