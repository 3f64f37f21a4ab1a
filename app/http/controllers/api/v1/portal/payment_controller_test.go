package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"

	"tcac/app/models/settings"
	"tcac/app/repositories"
	"tcac/pkg/database"
	"tcac/pkg/database/migrations"
	"tcac/pkg/logger"
)

// setupRouter 连接内存数据库并挂载用户端路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database.Connect(
		sqlite.Open("file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared"),
		logger.NewGormLogger(),
	)
	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	router := gin.New()
	router.POST("/api/register", NewRegisterController().Store)
	pc := NewPaymentController(nil)
	router.POST("/api/payments", pc.Store)
	router.GET("/api/users/:user_id/payments", pc.Index)
	router.POST("/api/payment-request", NewPaymentRequestController().Store)
	return router
}

// seedSettings 写入一条指定状态的门户配置
func seedSettings(t *testing.T, patch func(*settings.Setting)) {
	t.Helper()
	repo := repositories.NewSettingsRepository()
	if _, err := repo.CreateDefault(context.Background()); err != nil {
		t.Fatalf("初始化配置失败: %v", err)
	}
	if patch != nil {
		s := settings.Default()
		patch(s)
		if _, err := repo.Update(context.Background(), s, "test"); err != nil {
			t.Fatalf("更新配置失败: %v", err)
		}
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	return resp.Message
}

func TestSubmitPaymentOffline(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, nil)

	body := `{"user_id": "u1", "amount": 50000, "provider": "offline", "receipt_url": "https://cdn.example.com/r.png"}`
	w := doJSON(router, "POST", "/api/payments", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body = %s", w.Code, w.Body.String())
	}

	// 落库为待审核
	repo := repositories.NewPaymentRepository()
	payments, total, err := repo.ListByUser(context.Background(), "u1", 1, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, 期望 1", total)
	}
	if !payments[0].IsPending() {
		t.Errorf("新记录状态 = %q, 期望 pending", payments[0].Status)
	}
	if payments[0].OrderNo == "" {
		t.Error("订单号未生成")
	}
}

func TestSubmitPaymentPortalClosed(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, func(s *settings.Setting) {
		s.PaymentPortalOpen = false
		s.PaymentClosedMessage = "缴费通道将于下周重新开放"
	})

	body := `{"user_id": "u1", "amount": 50000, "provider": "offline", "receipt_url": "x"}`
	w := doJSON(router, "POST", "/api/payments", body)

	if w.Code != http.StatusForbidden {
		t.Fatalf("状态码 = %d, 期望 403, body = %s", w.Code, w.Body.String())
	}
	// 拒绝消息必须原样使用配置里的文案
	if got := responseMessage(t, w); got != "缴费通道将于下周重新开放" {
		t.Errorf("message = %q", got)
	}
}

func TestSubmitPaymentDeadlinePassed(t *testing.T) {
	router := setupRouter(t)
	past := time.Now().Add(-time.Hour)
	seedSettings(t, func(s *settings.Setting) {
		s.PaymentPortalOpen = true
		s.PaymentDeadline = &past
	})

	body := `{"user_id": "u1", "amount": 50000, "provider": "offline", "receipt_url": "x"}`
	w := doJSON(router, "POST", "/api/payments", body)

	if w.Code != http.StatusForbidden {
		t.Fatalf("状态码 = %d, 期望 403, body = %s", w.Code, w.Body.String())
	}
}

func TestSubmitPaymentGatewayUnavailable(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, nil)

	// 未装配任何在线网关时，在线渠道直接拒绝
	body := `{"user_id": "u1", "amount": 50000, "provider": "alipay"}`
	w := doJSON(router, "POST", "/api/payments", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码 = %d, 期望 400, body = %s", w.Code, w.Body.String())
	}
}

func TestRegisterClosed(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, func(s *settings.Setting) {
		s.PortalRegistrationOpen = false
		s.RegistrationMessage = "报名人数已满"
	})

	body := `{"first_name": "Ada", "last_name": "Obi", "email": "ada@example.com"}`
	w := doJSON(router, "POST", "/api/register", body)

	if w.Code != http.StatusForbidden {
		t.Fatalf("状态码 = %d, 期望 403, body = %s", w.Code, w.Body.String())
	}
	if got := responseMessage(t, w); got != "报名人数已满" {
		t.Errorf("message = %q", got)
	}
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, nil)

	body := `{"first_name": "Ada", "last_name": "Obi", "email": "ada@example.com"}`
	w := doJSON(router, "POST", "/api/register", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body = %s", w.Code, w.Body.String())
	}

	// 同邮箱再次报名被拒
	w = doJSON(router, "POST", "/api/register", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("重复报名状态码 = %d, 期望 400, body = %s", w.Code, w.Body.String())
	}
}

func TestPaymentEscalation(t *testing.T) {
	router := setupRouter(t)
	seedSettings(t, nil)

	w := doJSON(router, "POST", "/api/payment-request", `{"user_id": "u1", "message": "  缴费被驳回，请帮忙复核  "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("状态码 = %d, 期望 201, body = %s", w.Code, w.Body.String())
	}

	records, err := repositories.NewPaymentRequestRepository().ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("记录数 = %d, 期望 1", len(records))
	}
	if records[0].Message != "缴费被驳回，请帮忙复核" {
		t.Errorf("message = %q, 期望去除首尾空白", records[0].Message)
	}

	// 纯空白申诉被拒
	w = doJSON(router, "POST", "/api/payment-request", `{"user_id": "u1", "message": "   "}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("空申诉状态码 = %d, 期望 422", w.Code)
	}
}
