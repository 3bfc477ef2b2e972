// Package consumer runs the stream-driven generation worker loop.
package consumer

import (
	"context"
	"sync"

	"golang-synth-datagen/internal/generator/service"
	"golang-synth-datagen/pkg/logger"
	"golang-synth-datagen/pkg/utils"
)

// RedisConsumer drives the worker against the job execution stream.
type RedisConsumer struct {
	workerService *service.WorkerService
	logger        *logger.Logger
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(workerService *service.WorkerService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		workerService: workerService,
		logger:        log,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the consumer's job processing loop. Poll blocks for a short
// window when the stream is empty, so the loop stays tight without spinning.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation")
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping")
				return
			default:
				if err := c.workerService.Poll(ctx); err != nil && ctx.Err() == nil {
					c.logger.Error("Worker poll failed", logger.ErrorField(err))
				}
			}
		}
	})
}

// Stop gracefully shuts down the consumer.
func (c *RedisConsumer) Stop() {
	close(c.stopChan)
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
