package bootstrap

import (
	"time"

	"tcac/pkg/config"
	"tcac/pkg/logger"
	"tcac/pkg/notify"
	"tcac/pkg/queue"
	"tcac/pkg/redis"
)

// SetupQueue 初始化审核通知队列，返回队列服务供控制器投递任务
// 未配置回调地址时只创建队列，不启动工作器
func SetupQueue() *queue.QueueService {
	if redis.Manager == nil {
		logger.ErrorString("Queue", "Setup", "Redis 尚未初始化，跳过队列启动")
		return nil
	}

	queueService := queue.NewQueueService()

	notifyService := notify.NewService(&notify.Config{
		URL:        config.GetString("notify.url"),
		APIKey:     config.GetString("notify.api_key"),
		Timeout:    time.Duration(config.GetInt("notify.timeout")) * time.Second,
		MaxRetries: config.GetInt("notify.max_retries"),
	})
	if notifyService == nil {
		logger.WarnString("Queue", "Setup", "未配置通知回调地址，审核事件不会投递")
		return queueService
	}

	worker := queue.NewWorker(queueService, notifyService, queue.WorkerConfig{
		WorkerCount:     config.GetInt("queue.worker_count", 4),
		MaxRetries:      config.GetInt("queue.retry_times", 3),
		RetryInterval:   time.Duration(config.GetInt("queue.retry_delay", 1)) * time.Second,
		ShutdownTimeout: 30 * time.Second,
	})

	go worker.Start()

	logger.InfoString("Queue", "Setup", "队列服务启动成功")
	return queueService
}
