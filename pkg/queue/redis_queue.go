// Package queue 审核通知队列
// 审核动作只负责入队，投递由后台 worker 异步完成，
// 投递失败不影响审核接口的响应
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"tcac/pkg/config"
	"tcac/pkg/notify"
	"tcac/pkg/redis"
)

// TaskStatus 任务状态
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// NotifyTask 通知投递任务
type NotifyTask struct {
	ID        string               `json:"id"`
	Event     notify.DecisionEvent `json:"event"`
	Status    TaskStatus           `json:"status"`
	Error     string               `json:"error,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// QueueService Redis 队列服务
type QueueService struct {
	client      *redis.RedisClient
	prefix      string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	metrics     *QueueMetrics
}

// NewQueueService 创建新的队列服务实例
func NewQueueService() *QueueService {
	rateLimit := config.GetInt("queue.rate_limit", 1000)
	burst := config.GetInt("queue.rate_burst", rateLimit)

	return &QueueService{
		client:      redis.GetRedis(redis.QueueDB),
		prefix:      config.GetString("redis.queue_prefix", "tcac:notify"),
		timeout:     time.Duration(config.GetInt("redis.queue_timeout", 3600)) * time.Second,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		metrics:     NewQueueMetrics(),
	}
}

// PushTask 将任务推送到队列
func (q *QueueService) PushTask(ctx context.Context, task *NotifyTask) error {
	// 应用限流
	if err := q.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	start := time.Now()
	defer func() {
		q.metrics.RecordPushLatency(time.Since(start))
	}()

	// 序列化任务
	taskJSON, err := json.Marshal(task)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	// 入队和状态写入放在同一个 pipeline
	key := fmt.Sprintf("%s:tasks", q.prefix)
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, task.ID)

	pipe := q.client.Client.Pipeline()
	pipe.LPush(ctx, key, taskJSON)
	pipe.Set(ctx, statusKey, string(TaskPending), q.timeout)

	_, err = pipe.Exec(ctx)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.RecordSuccess(OpPush)
	return nil
}

// PopTask 从队列中获取任务，队列为空时阻塞
func (q *QueueService) PopTask(ctx context.Context) (*NotifyTask, error) {
	key := fmt.Sprintf("%s:tasks", q.prefix)
	result, err := q.client.Client.BRPop(ctx, 0, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}

	var task NotifyTask
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	return &task, nil
}

// UpdateTaskStatus 更新任务状态
func (q *QueueService) UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus, errMsg string) error {
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, taskID)

	payload := string(status)
	if errMsg != "" {
		payload = fmt.Sprintf("%s:%s", status, errMsg)
	}

	if err := q.client.Client.Set(ctx, statusKey, payload, q.timeout).Err(); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// GetTaskStatus 查询任务状态
// 状态键过期或不存在时返回空字符串，Redis 故障返回 error
func (q *QueueService) GetTaskStatus(ctx context.Context, taskID string) (string, error) {
	statusKey := fmt.Sprintf("%s:status:%s", q.prefix, taskID)
	result, err := q.client.Client.Get(ctx, statusKey).Result()
	if errors.Is(err, redislib.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get task status: %w", err)
	}
	return result, nil
}

// Ping 队列健康检查
func (q *QueueService) Ping(ctx context.Context) error {
	return q.client.Ping()
}

// Metrics 返回指标收集器
func (q *QueueService) Metrics() *QueueMetrics {
	return q.metrics
}
