// Package alipay 支付宝网关
package alipay

import (
	"context"
	"fmt"
	"time"

	"github.com/smartwalle/alipay/v3"

	"tcac/app/models/payment"
	"tcac/config"
	"tcac/pkg/payment/types"
	"tcac/pkg/payment/utils"
)

// AlipayService 支付宝支付服务
type AlipayService struct {
	client     *alipay.Client
	appID      string
	notifyURL  string
	returnURL  string
	repository types.Repository
}

// NewAlipayService 创建支付宝支付服务
func NewAlipayService(cfg config.AlipayConfig, repo types.Repository) (*AlipayService, error) {
	client, err := alipay.New(cfg.AppID, cfg.PrivateKey, cfg.IsProduction)
	if err != nil {
		return nil, fmt.Errorf("create alipay client error: %w", err)
	}

	if err := client.LoadAliPayPublicKey(cfg.PublicKey); err != nil {
		return nil, fmt.Errorf("load alipay public key error: %w", err)
	}

	return &AlipayService{
		client:     client,
		appID:      cfg.AppID,
		notifyURL:  cfg.NotifyURL,
		returnURL:  cfg.ReturnURL,
		repository: repo,
	}, nil
}

// CreatePayment 创建支付
// 先落库 pending 记录，再向网关下单
func (s *AlipayService) CreatePayment(ctx context.Context, req *types.Request) (*types.Result, error) {
	orderNo := utils.GenerateOrderNo()
	expireAt := time.Now().Add(30 * time.Minute)

	p := &payment.Payment{
		OrderNo:  orderNo,
		UserID:   req.UserID,
		Provider: string(types.ProviderAlipay),
		Amount:   req.Amount,
		Status:   string(payment.StatusPending),
	}

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment record error: %w", err)
	}

	trade := alipay.TradePagePay{}
	trade.NotifyURL = s.notifyURL
	trade.ReturnURL = req.ReturnURL
	trade.Subject = req.Description
	trade.OutTradeNo = orderNo
	trade.TotalAmount = fmt.Sprintf("%.2f", float64(req.Amount)/100)
	trade.ProductCode = "FAST_INSTANT_TRADE_PAY"

	url, err := s.client.TradePagePay(trade)
	if err != nil {
		return nil, fmt.Errorf("create alipay payment error: %w", err)
	}

	return &types.Result{
		OrderNo:    orderNo,
		PaymentURL: url.String(),
		ExpireAt:   expireAt,
	}, nil
}

// QueryPayment 查询支付记录
func (s *AlipayService) QueryPayment(ctx context.Context, orderNo string) (*payment.Payment, error) {
	return s.repository.GetByOrderNo(ctx, orderNo)
}

// HandleNotify 处理支付宝回调通知
// 回调后的对账、余额调整由下游通知服务负责
func (s *AlipayService) HandleNotify(ctx context.Context, data []byte) error {
	return nil
}
