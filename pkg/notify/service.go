// Package notify 审核结果的下游通知服务
// 通过 webhook 将审核事件推送给负责余额调整与邮件的外部系统
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"tcac/pkg/logger"
)

// Service 通知服务
type Service struct {
	client     *resty.Client
	url        string
	maxRetries int
}

// NewService 创建通知服务实例
// URL 未配置时返回 nil，上层按未启用处理
func NewService(cfg *Config) *Service {
	if cfg == nil || cfg.URL == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Service{
		client:     client,
		url:        cfg.URL,
		maxRetries: maxRetries,
	}
}

// SendDecision 投递审核事件
// 失败时按指数退避重试，全部失败才返回错误
func (s *Service) SendDecision(ctx context.Context, event *DecisionEvent) error {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			// 指数退避：1s、2s、4s ...
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := s.client.R().
			SetContext(ctx).
			SetBody(event).
			Post(s.url)

		if err != nil {
			lastErr = err
			logger.WarnString("Notify", "SendDecision", fmt.Sprintf(
				"第 %d 次投递失败: %v", attempt+1, err,
			))
			continue
		}

		if resp.IsSuccess() {
			return nil
		}

		lastErr = fmt.Errorf("notify endpoint returned status %d", resp.StatusCode())
		logger.WarnString("Notify", "SendDecision", fmt.Sprintf(
			"第 %d 次投递被拒绝: %s", attempt+1, resp.Status(),
		))
	}

	return fmt.Errorf("send decision event failed after %d retries: %w", s.maxRetries, lastErr)
}

// HealthCheck 探测通知端点可达性
func (s *Service) HealthCheck(ctx context.Context) error {
	if s == nil {
		return errors.New("notify service not configured")
	}

	resp, err := s.client.R().SetContext(ctx).Head(s.url)
	if err != nil {
		return fmt.Errorf("notify endpoint unreachable: %w", err)
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("notify endpoint unhealthy: %s", resp.Status())
	}
	return nil
}
