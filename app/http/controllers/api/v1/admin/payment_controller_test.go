package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"

	"tcac/app/models/payment"
	"tcac/app/models/user"
	"tcac/app/repositories"
	"tcac/pkg/database"
	"tcac/pkg/database/migrations"
	"tcac/pkg/logger"
)

// setupRouter 连接内存数据库并挂载审核相关路由
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

	pc := NewPaymentController(nil)
	router := gin.New()
	router.GET("/api/admin/payments", pc.Index)
	router.GET("/api/admin/payments/counts", pc.Counts)
	router.POST("/api/admin/update-payment-status", pc.UpdateStatus)
	return router
}

func seedPayment(t *testing.T, userID, status string) *payment.Payment {
	t.Helper()
	repo := repositories.NewPaymentRepository()
	p := &payment.Payment{
		OrderNo:  fmt.Sprintf("T%d", time.Now().UnixNano()),
		UserID:   userID,
		Provider: string(payment.ProviderOffline),
		Amount:   50000,
		Status:   status,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("创建缴费记录失败: %v", err)
	}
	return p
}

func seedUser(t *testing.T, id, firstName, lastName string) {
	t.Helper()
	repo := repositories.NewUserRepository()
	err := repo.Create(context.Background(), &user.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateStatusApprove(t *testing.T) {
	router := setupRouter(t)
	p := seedPayment(t, "u1", "pending")

	body := fmt.Sprintf(`{"payment_id": %d, "status": "approved", "admin_comment": "核对无误"}`, p.ID)
	w := doJSON(router, "POST", "/api/admin/update-payment-status", body)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Payment payment.Payment `json:"payment"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if !resp.Data.Payment.IsApproved() {
		t.Errorf("审核后状态 = %q, 期望 approved", resp.Data.Payment.Status)
	}
	if resp.Data.Payment.AdminComment != "核对无误" {
		t.Errorf("审核意见 = %q", resp.Data.Payment.AdminComment)
	}
}

func TestUpdateStatusConflictOnDecided(t *testing.T) {
	router := setupRouter(t)
	p := seedPayment(t, "u1", "approved")

	body := fmt.Sprintf(`{"payment_id": %d, "status": "rejected"}`, p.ID)
	w := doJSON(router, "POST", "/api/admin/update-payment-status", body)

	if w.Code != http.StatusConflict {
		t.Fatalf("状态码 = %d, 期望 409, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateStatusConflictOnStaleVersion(t *testing.T) {
	router := setupRouter(t)
	p := seedPayment(t, "u1", "pending")

	stale := p.UpdatedAt.Add(-time.Hour).Format(time.RFC3339Nano)
	body := fmt.Sprintf(`{"payment_id": %d, "status": "approved", "updated_at": %q}`, p.ID, stale)
	w := doJSON(router, "POST", "/api/admin/update-payment-status", body)

	if w.Code != http.StatusConflict {
		t.Fatalf("状态码 = %d, 期望 409, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/api/admin/update-payment-status", `{"payment_id": 9999, "status": "approved"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404, body = %s", w.Code, w.Body.String())
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	router := setupRouter(t)

	// 缺少审核结果
	w := doJSON(router, "POST", "/api/admin/update-payment-status", `{"payment_id": 1}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("状态码 = %d, 期望 422, body = %s", w.Code, w.Body.String())
	}
}

func TestPaymentsIndexAndCounts(t *testing.T) {
	router := setupRouter(t)
	seedUser(t, "u1", "Ada", "Obi")
	seedPayment(t, "u1", "pending")
	seedPayment(t, "u1", "approved")

	// 列表带状态筛选
	w := doJSON(router, "GET", "/api/admin/payments?status=pending", "")
	if w.Code != http.StatusOK {
		t.Fatalf("列表状态码 = %d, body = %s", w.Code, w.Body.String())
	}

	var listResp struct {
		Data struct {
			Payments []payment.Payment `json:"payments"`
			Meta     struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("解析列表响应失败: %v", err)
	}
	if listResp.Data.Meta.Total != 1 {
		t.Errorf("total = %d, 期望 1", listResp.Data.Meta.Total)
	}

	// 非法状态筛选直接拒绝
	w = doJSON(router, "GET", "/api/admin/payments?status=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法筛选状态码 = %d, 期望 400", w.Code)
	}

	// 角标统计覆盖全部状态
	w = doJSON(router, "GET", "/api/admin/payments/counts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("统计状态码 = %d, body = %s", w.Code, w.Body.String())
	}

	var countsResp struct {
		Data struct {
			Counts map[string]int64 `json:"counts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &countsResp); err != nil {
		t.Fatalf("解析统计响应失败: %v", err)
	}
	if countsResp.Data.Counts["pending"] != 1 || countsResp.Data.Counts["approved"] != 1 {
		t.Errorf("counts = %v", countsResp.Data.Counts)
	}
	if _, ok := countsResp.Data.Counts["rejected"]; !ok {
		t.Error("零记录状态缺失")
	}
}
