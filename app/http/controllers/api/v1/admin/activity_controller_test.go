package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"

	"tcac/app/models/activity"
	"tcac/pkg/database"
	"tcac/pkg/database/migrations"
	"tcac/pkg/logger"
)

// setupActivityRouter 连接内存数据库并挂载日程活动路由
func setupActivityRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database.Connect(
		sqlite.Open("file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared"),
		logger.NewGormLogger(),
	)
	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	ac := NewActivityController()
	router := gin.New()
	router.POST("/api/admin/activities", ac.Store)
	router.DELETE("/api/admin/activities/:id", ac.Destroy)
	return router
}

func TestActivityStoreAndDestroy(t *testing.T) {
	router := setupActivityRouter(t)

	w := doJSON(router, "POST", "/api/admin/activities", `{"name": "开幕式", "location": "主会场"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("创建状态码 = %d, 期望 201, body = %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			Activity activity.Activity `json:"activity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("解析创建响应失败: %v", err)
	}
	if created.Data.Activity.ID == 0 {
		t.Fatal("创建后未返回活动 ID")
	}

	w = doJSON(router, "DELETE", fmt.Sprintf("/api/admin/activities/%d", created.Data.Activity.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("删除状态码 = %d, 期望 200, body = %s", w.Code, w.Body.String())
	}

	var deleted struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("解析删除响应失败: %v", err)
	}
	if deleted.Status != "success" {
		t.Errorf("status = %q, 期望 success", deleted.Status)
	}
	if deleted.Message == "" {
		t.Error("删除响应缺少提示信息")
	}
}

func TestActivityDestroyNotFound(t *testing.T) {
	router := setupActivityRouter(t)

	w := doJSON(router, "DELETE", "/api/admin/activities/9999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望 404, body = %s", w.Code, w.Body.String())
	}
}
