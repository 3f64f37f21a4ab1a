// Package routes 注册路由
package routes

import (
	"github.com/gin-gonic/gin"

	"tcac/app/http/controllers/api/v1/admin"
	"tcac/app/http/controllers/api/v1/portal"
	"tcac/app/http/middlewares"
	"tcac/pkg/payment/types"
	"tcac/pkg/queue"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 📝 报名和缴费提交限流：每小时每IP 60 请求
	SubmitLimit = "60-H"
	// 🔍 查询类限流：每分钟每IP 300 请求
	QueryLimit = "300-M"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, queueService *queue.QueueService, gateways map[types.Provider]types.Service) {
	api := r.Group("/api")

	api.Use(
		middlewares.LimitIP(GlobalRateLimit),
	)

	// 👤 用户端路由
	{
		registerController := portal.NewRegisterController()
		paymentController := portal.NewPaymentController(gateways)
		requestController := portal.NewPaymentRequestController()

		// 提交报名
		// POST /api/register
		api.POST("/register",
			middlewares.LimitIP(SubmitLimit),
			registerController.Store,
		)

		// 提交缴费（线下凭证或在线支付）
		// POST /api/payments
		api.POST("/payments",
			middlewares.LimitIP(SubmitLimit),
			paymentController.Store,
		)

		// 获取指定用户的缴费记录
		// GET /api/users/:user_id/payments
		api.GET("/users/:user_id/payments",
			middlewares.LimitIP(QueryLimit),
			paymentController.Index,
		)

		// 缴费申诉
		// POST /api/payment-request
		api.POST("/payment-request",
			middlewares.LimitIP(SubmitLimit),
			requestController.Store,
		)
	}

	// ⚙️ 门户配置路由
	{
		settingsController := admin.NewSettingsController()

		api.GET("/settings", middlewares.LimitIP(QueryLimit), settingsController.Show)
		api.POST("/settings", settingsController.Store)
		api.PUT("/settings", settingsController.Update)
	}

	// 🛡 管理端路由
	adminRoutes := api.Group("/admin")
	{
		paymentController := admin.NewPaymentController(queueService)

		// 缴费审核列表，支持状态筛选、姓名搜索和分页
		// GET /api/admin/payments
		adminRoutes.GET("/payments",
			middlewares.LimitIP(QueryLimit),
			paymentController.Index,
		)

		// 各状态记录总数，用于筛选按钮角标
		// GET /api/admin/payments/counts
		adminRoutes.GET("/payments/counts",
			middlewares.LimitIP(QueryLimit),
			paymentController.Counts,
		)

		// 审核缴费记录
		// POST /api/admin/update-payment-status
		adminRoutes.POST("/update-payment-status",
			middlewares.LimitPerRoute(SubmitLimit),
			paymentController.UpdateStatus,
		)

		// 日程维护
		activityController := admin.NewActivityController()
		adminRoutes.GET("/activities", activityController.Index)
		adminRoutes.POST("/activities", activityController.Store)
		adminRoutes.PUT("/activities/:id", activityController.Update)
		adminRoutes.DELETE("/activities/:id", activityController.Destroy)

		mealController := admin.NewMealController()
		adminRoutes.GET("/meals", mealController.Index)
		adminRoutes.POST("/meals", mealController.Store)
		adminRoutes.PUT("/meals/:id", mealController.Update)
		adminRoutes.DELETE("/meals/:id", mealController.Destroy)

		dayController := admin.NewDayController()
		adminRoutes.GET("/days", dayController.Index)
		adminRoutes.POST("/days", dayController.Store)
		adminRoutes.PUT("/days/:id", dayController.Update)
		adminRoutes.DELETE("/days/:id", dayController.Destroy)
	}
}
