package portal

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tcac/app/models/paymentrequest"
	"tcac/app/repositories"
	"tcac/app/requests"
	"tcac/pkg/response"
)

// PaymentRequestController 缴费申诉控制器
// 缴费被拒或遇到问题的用户通过这里给管理员留言
type PaymentRequestController struct {
	requestRepo *repositories.PaymentRequestRepository
}

// NewPaymentRequestController 创建缴费申诉控制器
func NewPaymentRequestController() *PaymentRequestController {
	return &PaymentRequestController{
		requestRepo: repositories.NewPaymentRequestRepository(),
	}
}

// Store 提交申诉
// POST /api/payment-request
func (pc *PaymentRequestController) Store(c *gin.Context) {
	request, err := requests.ValidatePaymentEscalation(c)
	if err != nil {
		var verr requests.ValidationError
		if errors.As(err, &verr) {
			response.ValidationError(c, verr.Map())
			return
		}
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	record := paymentrequest.PaymentRequest{
		UserID:  request.UserID,
		Message: request.Message,
	}
	if err := pc.requestRepo.Create(c.Request.Context(), &record); err != nil {
		response.Abort500(c, "提交申诉失败")
		return
	}

	response.Created(c, gin.H{"request": record})
}
