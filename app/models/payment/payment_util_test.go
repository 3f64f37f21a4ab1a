package payment

import (
	"testing"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"pending", true},
		{"approved", true},
		{"rejected", true},
		{"", false},
		{"Pending", false},
		{"done", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, 期望 %v", tt.status, got, tt.want)
		}
	}
}

func TestValidDecision(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"approved", true},
		{"rejected", true},
		// pending 是初始态，不是审核目标
		{"pending", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDecision(tt.status); got != tt.want {
			t.Errorf("ValidDecision(%q) = %v, 期望 %v", tt.status, got, tt.want)
		}
	}
}

func TestCanDecide(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"待审核可以审", "pending", true},
		{"已通过不可再审", "approved", false},
		{"已驳回不可再审", "rejected", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{Status: tt.status}
			if got := p.CanDecide(); got != tt.want {
				t.Errorf("CanDecide() = %v, 期望 %v", got, tt.want)
			}
			// 审核意见的可编辑性必须和审核窗口一致
			if got := p.CommentEditable(); got != tt.want {
				t.Errorf("CommentEditable() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		wantErr bool
	}{
		{"合法的线下缴费", Payment{UserID: "u1", Amount: 50000, Provider: "offline"}, false},
		{"合法的在线缴费", Payment{UserID: "u1", Amount: 50000, Provider: "alipay"}, false},
		{"缺少用户", Payment{Amount: 50000, Provider: "offline"}, true},
		{"金额为零", Payment{UserID: "u1", Amount: 0, Provider: "offline"}, true},
		{"金额为负", Payment{UserID: "u1", Amount: -100, Provider: "offline"}, true},
		{"未知渠道", Payment{UserID: "u1", Amount: 50000, Provider: "cash"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
