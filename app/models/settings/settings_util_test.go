package settings

import (
	"testing"
	"time"
)

func TestRegistrationClosed(t *testing.T) {
	open := Setting{PortalRegistrationOpen: true}
	if open.RegistrationClosed() {
		t.Error("开关打开时报名不应关闭")
	}

	closed := Setting{PortalRegistrationOpen: false}
	if !closed.RegistrationClosed() {
		t.Error("开关关闭时报名应关闭")
	}
}

func TestPaymentClosed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		open     bool
		deadline *time.Time
		want     bool
	}{
		{"开关打开且无截止时间", true, nil, false},
		{"开关打开且截止时间未到", true, &future, false},
		{"开关打开但截止时间已过", true, &past, true},
		{"开关关闭", false, nil, true},
		{"开关关闭且截止时间未到，开关优先", false, &future, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Setting{
				PaymentPortalOpen: tt.open,
				PaymentDeadline:   tt.deadline,
			}
			if got := s.PaymentClosed(now); got != tt.want {
				t.Errorf("PaymentClosed() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestDeadlinePassed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	s := Setting{}
	if s.DeadlinePassed(now) {
		t.Error("无截止时间时不应判定过期")
	}

	// 截止时刻本身不算过期，严格晚于才算
	exact := now
	s.PaymentDeadline = &exact
	if s.DeadlinePassed(now) {
		t.Error("截止时刻当下不应判定过期")
	}

	past := now.Add(-time.Minute)
	s.PaymentDeadline = &past
	if !s.DeadlinePassed(now) {
		t.Error("截止时间已过应判定过期")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if !s.PortalRegistrationOpen || !s.PaymentPortalOpen {
		t.Error("默认配置应开放两个通道")
	}
	if s.PaymentDeadline != nil {
		t.Error("默认配置不应带截止时间")
	}
	if s.RegistrationMessage == "" || s.PaymentClosedMessage == "" {
		t.Error("默认提示文案不能为空")
	}
	if s.UpdatedBy != "system" {
		t.Errorf("默认修改人 = %q, 期望 system", s.UpdatedBy)
	}
}
