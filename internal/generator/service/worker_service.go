package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/config"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/repository"
	"golang-synth-datagen/pkg/common"
	"golang-synth-datagen/pkg/logger"
	redisPkg "golang-synth-datagen/pkg/redis"
	"golang-synth-datagen/pkg/telegram"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

// WorkerService dequeues generation jobs from the Redis stream and runs the
// pipeline for each one.
type WorkerService struct {
	cfg         *config.Config
	jobRepo     repository.GenerationJobRepository
	redisClient *redisPkg.Client
	generator   *GeneratorService
	notifier    telegram.Notifier
	logger      *logger.Logger
}

// NewWorkerService creates a new WorkerService. notifier may be nil when
// Telegram notifications are disabled.
func NewWorkerService(cfg *config.Config, jobRepo repository.GenerationJobRepository, redisClient *redisPkg.Client, generator *GeneratorService, notifier telegram.Notifier, log *logger.Logger) *WorkerService {
	return &WorkerService{
		cfg:         cfg,
		jobRepo:     jobRepo,
		redisClient: redisClient,
		generator:   generator,
		notifier:    notifier,
		logger:      log,
	}
}

// Poll reads at most one pending job from the stream and executes it. It
// returns without error when the read blocks out with nothing to do.
func (w *WorkerService) Poll(ctx context.Context) error {
	streams, err := w.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: common.RedisStreamConsumer,
		Streams:  []string{common.RedisStreamJobExecution, ">"},
		Count:    1,
		Block:    2 * time.Second,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	for _, stream := range streams {
		for _, message := range stream.Messages {
			w.handleMessage(ctx, message)
			if err := w.redisClient.XAck(ctx, common.RedisStreamJobExecution, common.RedisStreamGroup, message.ID).Err(); err != nil {
				w.logger.Error("Failed to ack stream message",
					logger.StringField("message_id", message.ID),
					logger.ErrorField(err),
				)
			}
		}
	}
	return nil
}

func (w *WorkerService) handleMessage(ctx context.Context, message redis.XMessage) {
	raw, ok := message.Values["job_id"].(string)
	if !ok {
		w.logger.Error("Stream message missing job_id", logger.StringField("message_id", message.ID))
		return
	}
	jobID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		w.logger.Error("Stream message has malformed job_id", logger.StringField("job_id", raw))
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.cfg.Worker.JobTimeout)
	defer cancel()
	w.Execute(jobCtx, uint(jobID))
}

// Execute loads the job, runs the generation pipeline, and records the
// outcome. Pipeline errors mark the job failed; they never crash the worker.
func (w *WorkerService) Execute(ctx context.Context, jobID uint) {
	job, err := w.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		w.logger.Error("Failed to load job", logger.IntField("job_id", int(jobID)), logger.ErrorField(err))
		return
	}
	if job.Status != entity.JobStatusPending {
		w.logger.Warn("Skipping job not in pending state",
			logger.IntField("job_id", int(jobID)),
			logger.StringField("status", string(job.Status)),
		)
		return
	}

	job.Status = entity.JobStatusRunning
	job.StartedAt = sql.NullTime{Time: time.Now(), Valid: true}
	if err := w.jobRepo.Update(ctx, job); err != nil {
		w.logger.Error("Failed to mark job running", logger.IntField("job_id", int(jobID)), logger.ErrorField(err))
		return
	}

	result, err := w.generator.GenerateDataset(ctx, &dto.GenerationRequest{
		Domain:      job.Domain,
		DatasetType: job.DatasetType,
		NumRecords:  job.NumRecords,
		StartDate:   job.StartDate,
		EndDate:     job.EndDate,
		Format:      job.Format,
	})

	job.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	if err != nil {
		job.Status = entity.JobStatusFailed
		job.ErrorMessage = toNullString(err.Error())
		w.logger.Error("Generation job failed",
			logger.IntField("job_id", int(jobID)),
			logger.ErrorField(err),
		)
	} else {
		job.Status = result.Status
		job.GeneratedRecords = result.GeneratedRecords
		job.OutputPath = toNullString(result.OutputPath)
		if result.Report != nil {
			if encoded, marshalErr := json.Marshal(result.Report); marshalErr == nil {
				job.QualityReport = datatypes.JSON(encoded)
			} else {
				w.logger.Error("Failed to marshal quality report", logger.ErrorField(marshalErr))
			}
		}
	}

	if err := w.jobRepo.Update(ctx, job); err != nil {
		w.logger.Error("Failed to record job outcome", logger.IntField("job_id", int(jobID)), logger.ErrorField(err))
		return
	}
	w.notify(job)
}

func (w *WorkerService) notify(job *entity.GenerationJob) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.SendMessage(telegram.FormatJobResult(job)); err != nil {
		w.logger.Warn("Failed to send Telegram notification",
			logger.IntField("job_id", int(job.ID)),
			logger.ErrorField(err),
		)
	}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
