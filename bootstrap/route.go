package bootstrap

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tcac/app/http/middlewares"
	"tcac/pkg/payment/types"
	"tcac/pkg/queue"
	"tcac/routes"
)

// SetupRoute 路由初始化
// 1. 注册全局中间件
// 2. 注册 API 路由
// 3. 配置 404 处理器
func SetupRoute(router *gin.Engine, queueService *queue.QueueService, gateways map[types.Provider]types.Service) {
	registerGlobalMiddleWare(router)

	routes.RegisterAPIRoutes(router, queueService, gateways)

	setup404Handler(router)
}

// registerGlobalMiddleWare 注册全局中间件
func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.Cors(),
	)
}

// setup404Handler 配置 404 请求处理器
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		acceptString := c.Request.Header.Get("Accept")

		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "页面返回 404")
		} else {
			c.JSON(http.StatusNotFound, gin.H{
				"error_code":    404,
				"error_message": "路由未定义，请确认 url 和请求方法是否正确。",
			})
		}
	})
}
