// Package wechat 微信支付网关
package wechat

import (
	"context"
	"fmt"
	"time"

	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	wxutils "github.com/wechatpay-apiv3/wechatpay-go/utils"

	"tcac/app/models/payment"
	"tcac/config"
	"tcac/pkg/payment/types"
	"tcac/pkg/payment/utils"
)

// WechatPayService 微信支付服务
type WechatPayService struct {
	client     *core.Client
	appID      string
	mchID      string
	notifyURL  string
	repository types.Repository
}

// NewWechatPayService 创建微信支付服务
func NewWechatPayService(cfg config.WechatConfig, repo types.Repository) (*WechatPayService, error) {
	// 1. 加载商户私钥
	mchPrivateKey, err := wxutils.LoadPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("load merchant private key error: %w", err)
	}

	// 2. 创建证书管理器
	opts := []core.ClientOption{
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID,
			cfg.SerialNo,
			mchPrivateKey,
			cfg.APIv3Key,
		),
	}

	// 3. 创建客户端
	client, err := core.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create wechat pay client error: %w", err)
	}

	return &WechatPayService{
		client:     client,
		appID:      cfg.AppID,
		mchID:      cfg.MchID,
		notifyURL:  cfg.NotifyURL,
		repository: repo,
	}, nil
}

// CreatePayment 创建支付
func (s *WechatPayService) CreatePayment(ctx context.Context, req *types.Request) (*types.Result, error) {
	orderNo := utils.GenerateOrderNo()
	expireAt := time.Now().Add(30 * time.Minute)

	p := &payment.Payment{
		OrderNo:  orderNo,
		UserID:   req.UserID,
		Provider: string(types.ProviderWechat),
		Amount:   req.Amount,
		Status:   string(payment.StatusPending),
	}

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment record error: %w", err)
	}

	// 调用微信支付 API 下单
	svc := jsapi.JsapiApiService{Client: s.client}
	prepayResp, result, err := svc.Prepay(ctx, jsapi.PrepayRequest{
		Appid:       core.String(s.appID),
		Mchid:       core.String(s.mchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(orderNo),
		NotifyUrl:   core.String(s.notifyURL),
		Amount: &jsapi.Amount{
			Total:    core.Int64(req.Amount),
			Currency: core.String("CNY"),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create wechat payment error: %w", err)
	}

	if result != nil && result.Response.StatusCode != 200 {
		return nil, fmt.Errorf("create wechat payment failed with status code: %d", result.Response.StatusCode)
	}

	// 生成前端调起支付所需的参数
	timestamp := time.Now().Unix()
	nonceStr := utils.GenerateNonceStr()
	packageStr := fmt.Sprintf("prepay_id=%s", *prepayResp.PrepayId)

	return &types.Result{
		OrderNo:  orderNo,
		PrepayID: *prepayResp.PrepayId,
		ExtraData: map[string]interface{}{
			"appId":     s.appID,
			"timeStamp": timestamp,
			"nonceStr":  nonceStr,
			"package":   packageStr,
			"signType":  "RSA",
		},
		ExpireAt: expireAt,
	}, nil
}

// QueryPayment 查询支付记录
func (s *WechatPayService) QueryPayment(ctx context.Context, orderNo string) (*payment.Payment, error) {
	return s.repository.GetByOrderNo(ctx, orderNo)
}

// HandleNotify 处理微信支付回调通知
func (s *WechatPayService) HandleNotify(ctx context.Context, data []byte) error {
	return nil
}
