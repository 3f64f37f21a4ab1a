package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"tcac/app/models/settings"
)

func TestSettingsRepository_GetEmpty(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingsRepository()

	_, err := repo.Get(context.Background())
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("err = %v, 期望 ErrSettingsNotFound", err)
	}
}

func TestSettingsRepository_CreateDefaultIdempotent(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingsRepository()

	first, err := repo.CreateDefault(context.Background())
	if err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}
	if !first.PortalRegistrationOpen || !first.PaymentPortalOpen {
		t.Errorf("默认配置应开放两个通道: %+v", first)
	}
	if first.PaymentClosedMessage != settings.DefaultPaymentClosedMessage {
		t.Errorf("默认缴费提示 = %q", first.PaymentClosedMessage)
	}

	// 重复调用不会产生第二条记录
	second, err := repo.CreateDefault(context.Background())
	if err != nil {
		t.Fatalf("CreateDefault 第二次: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("重复初始化产生了新记录: %d != %d", second.ID, first.ID)
	}
}

func TestSettingsRepository_Update(t *testing.T) {
	setupTestDB(t)
	repo := NewSettingsRepository()

	created, err := repo.CreateDefault(context.Background())
	if err != nil {
		t.Fatalf("CreateDefault: %v", err)
	}

	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	patch := &settings.Setting{
		PortalRegistrationOpen: false,
		RegistrationMessage:    "报名已截止",
		PaymentPortalOpen:      false,
		PaymentDeadline:        &deadline,
		PaymentClosedMessage:   "缴费已截止，请联系管理员",
	}

	updated, err := repo.Update(context.Background(), patch, "admin-1")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("更新改变了主键: %d != %d", updated.ID, created.ID)
	}
	if updated.UpdatedBy != "admin-1" {
		t.Errorf("修改人 = %q, 期望 admin-1", updated.UpdatedBy)
	}
	if updated.PortalRegistrationOpen || updated.PaymentPortalOpen {
		t.Error("通道开关未更新")
	}

	// 重新读取验证落库
	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.PaymentClosedMessage != "缴费已截止，请联系管理员" {
		t.Errorf("缴费提示 = %q", got.PaymentClosedMessage)
	}
	if got.PaymentDeadline == nil || !got.PaymentDeadline.Equal(deadline) {
		t.Errorf("截止时间 = %v, 期望 %v", got.PaymentDeadline, deadline)
	}
}
