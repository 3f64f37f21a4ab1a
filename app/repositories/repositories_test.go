package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"

	"tcac/pkg/database"
	"tcac/pkg/database/migrations"
	"tcac/pkg/logger"
)

// setupTestDB 连接一个独立的内存数据库并迁移全部表结构
func setupTestDB(t *testing.T) {
	t.Helper()

	database.Connect(
		sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		logger.NewGormLogger(),
	)

	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}
}
