package bootstrap

import (
	"tcac/app/repositories"
	"tcac/config"
	"tcac/pkg/logger"
	"tcac/pkg/payment"
	"tcac/pkg/payment/types"
)

// SetupPaymentGateways 装配在线支付网关
// 密钥未配置的渠道直接跳过，线下凭证缴费不依赖网关
func SetupPaymentGateways() map[types.Provider]types.Service {
	gateways := map[types.Provider]types.Service{}
	repo := repositories.NewPaymentRepository()

	if wcfg := config.LoadWechatConfig(); wcfg.Configured() {
		service, err := payment.NewPaymentService(types.ProviderWechat, repo, wcfg)
		if err != nil {
			logger.ErrorString("支付", "Setup", "微信支付初始化失败："+err.Error())
		} else {
			gateways[types.ProviderWechat] = service
			logger.InfoString("支付", "Setup", "微信支付网关就绪")
		}
	}

	if acfg := config.LoadAlipayConfig(); acfg.Configured() {
		service, err := payment.NewPaymentService(types.ProviderAlipay, repo, acfg)
		if err != nil {
			logger.ErrorString("支付", "Setup", "支付宝初始化失败："+err.Error())
		} else {
			gateways[types.ProviderAlipay] = service
			logger.InfoString("支付", "Setup", "支付宝网关就绪")
		}
	}

	return gateways
}
