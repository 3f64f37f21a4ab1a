package settings

import "time"

// 默认提示文案
const (
	DefaultRegistrationMessage  = "报名通道暂未开放，请稍后再试"
	DefaultPaymentClosedMessage = "缴费通道已关闭"
)

// Default 返回一条默认设置记录，启动迁移缺省写入时使用
func Default() *Setting {
	return &Setting{
		PortalRegistrationOpen: true,
		RegistrationMessage:    DefaultRegistrationMessage,
		PaymentPortalOpen:      true,
		PaymentDeadline:        nil,
		PaymentClosedMessage:   DefaultPaymentClosedMessage,
		UpdatedBy:              "system",
	}
}

// RegistrationClosed 检查报名通道是否关闭
func (s *Setting) RegistrationClosed() bool {
	return !s.PortalRegistrationOpen
}

// PaymentClosed 检查缴费通道是否关闭
// 开关关闭，或截止时间已过，均视为关闭
func (s *Setting) PaymentClosed(now time.Time) bool {
	if !s.PaymentPortalOpen {
		return true
	}
	return s.DeadlinePassed(now)
}

// DeadlinePassed 检查缴费截止时间是否已过
func (s *Setting) DeadlinePassed(now time.Time) bool {
	return s.PaymentDeadline != nil && now.After(*s.PaymentDeadline)
}
