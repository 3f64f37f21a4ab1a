package payment

import (
	"errors"
)

// Provider 支付渠道类型
type Provider string

const (
	ProviderOffline Provider = "offline" // 线下转账，附凭证
	ProviderWechat  Provider = "wechat"  // 微信支付
	ProviderAlipay  Provider = "alipay"  // 支付宝
)

// Status 审核状态
type Status string

const (
	StatusPending  Status = "pending"  // 待审核
	StatusApproved Status = "approved" // 审核通过（终态）
	StatusRejected Status = "rejected" // 审核驳回（终态）
)

// Statuses 全部审核状态，筛选统计时使用
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// ValidStatus 检查是否为合法的审核状态
func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if status == string(s) {
			return true
		}
	}
	return false
}

// ValidDecision 检查是否为合法的审核目标状态
// 审核只允许从 pending 进入两个终态之一
func ValidDecision(status string) bool {
	return status == string(StatusApproved) || status == string(StatusRejected)
}

// Validate 验证缴费记录
func (p *Payment) Validate() error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if !p.ValidateProvider() {
		return errors.New("invalid payment provider")
	}
	return nil
}

// ValidateProvider 验证支付渠道
func (p *Payment) ValidateProvider() bool {
	switch Provider(p.Provider) {
	case ProviderOffline, ProviderWechat, ProviderAlipay:
		return true
	}
	return false
}

// IsPending 检查是否待审核
func (p *Payment) IsPending() bool {
	return p.Status == string(StatusPending)
}

// IsApproved 检查是否已通过
func (p *Payment) IsApproved() bool {
	return p.Status == string(StatusApproved)
}

// IsRejected 检查是否已驳回
func (p *Payment) IsRejected() bool {
	return p.Status == string(StatusRejected)
}

// CanDecide 检查是否允许审核
// 终态记录不存在任何后续迁移
func (p *Payment) CanDecide() bool {
	return p.IsPending()
}

// CommentEditable 审核意见是否可编辑，与 CanDecide 同步
func (p *Payment) CommentEditable() bool {
	return p.IsPending()
}
