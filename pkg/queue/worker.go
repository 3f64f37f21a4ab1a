package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tcac/pkg/logger"
	"tcac/pkg/notify"
)

// Worker 通知投递工作器组
type Worker struct {
	queueService  *QueueService
	notifyService *notify.Service
	stopChan      chan struct{}
	workerCount   int
	metrics       *QueueMetrics
	wg            sync.WaitGroup
	config        WorkerConfig
}

// WorkerConfig 工作器配置
type WorkerConfig struct {
	WorkerCount     int           // 并发工作器数量
	MaxRetries      int           // 最大重试次数
	RetryInterval   time.Duration // 重试间隔
	ShutdownTimeout time.Duration // 关闭超时时间
}

// NewWorker 创建新的工作器组
func NewWorker(qs *QueueService, ns *notify.Service, config WorkerConfig) *Worker {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 5
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 30 * time.Second
	}

	return &Worker{
		queueService:  qs,
		notifyService: ns,
		stopChan:      make(chan struct{}),
		workerCount:   config.WorkerCount,
		metrics:       NewQueueMetrics(),
		config:        config,
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.startWorker(i)
	}
}

// startWorker 启动单个工作器
func (w *Worker) startWorker(id int) {
	defer w.wg.Done()

	logger.InfoString("Worker", "Start", fmt.Sprintf("Worker %d started", id))

	for {
		select {
		case <-w.stopChan:
			logger.InfoString("Worker", "Stop", fmt.Sprintf("Worker %d stopping", id))
			return

		default:
			if err := w.processNextTask(); err != nil {
				logger.ErrorString("Worker", "Error", fmt.Sprintf("Worker %d error: %v", id, err))
				time.Sleep(time.Second) // 错误恢复延迟
			}
		}
	}
}

// processNextTask 取出并处理下一个任务
func (w *Worker) processNextTask() error {
	start := time.Now()
	defer func() {
		w.metrics.RecordProcessingTime(time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	task, err := w.queueService.PopTask(ctx)
	if err != nil {
		if err == redis.Nil || ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("pop task error: %w", err)
	}

	return w.handleTask(ctx, task)
}

// handleTask 处理单个任务
func (w *Worker) handleTask(ctx context.Context, task *NotifyTask) error {
	// 更新状态为处理中
	if err := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskRunning, ""); err != nil {
		return fmt.Errorf("update task status error: %w", err)
	}

	// 投递事件，SendDecision 内部已带重试
	if err := w.notifyService.SendDecision(ctx, &task.Event); err != nil {
		w.metrics.RecordError(OpProcess)
		if updateErr := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskFailed, err.Error()); updateErr != nil {
			logger.ErrorString("Worker", "UpdateStatus", updateErr.Error())
		}
		return fmt.Errorf("deliver notify event error: %w", err)
	}

	// 更新任务状态
	if err := w.queueService.UpdateTaskStatus(ctx, task.ID, TaskCompleted, ""); err != nil {
		return fmt.Errorf("update task result error: %w", err)
	}

	w.metrics.RecordSuccess(OpProcess)
	return nil
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	close(w.stopChan)

	// 等待所有工作器完成
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("Worker", "Stop", "All workers stopped gracefully")
	case <-time.After(w.config.ShutdownTimeout):
		logger.WarnString("Worker", "Stop", "Worker shutdown timed out")
	}
}
