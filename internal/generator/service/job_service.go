package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/repository"
	"golang-synth-datagen/pkg/common"
	"golang-synth-datagen/pkg/logger"
	redisPkg "golang-synth-datagen/pkg/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

const (
	reportCacheTTL     = 5 * time.Minute
	reportCacheCleanup = 10 * time.Minute
)

// JobService manages generation job records and hands them to the worker via
// the Redis stream.
type JobService struct {
	jobRepo     repository.GenerationJobRepository
	redisClient *redisPkg.Client
	generator   *GeneratorService
	logger      *logger.Logger
	reportCache *cache.Cache
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.GenerationJobRepository, redisClient *redisPkg.Client, generator *GeneratorService, log *logger.Logger) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		redisClient: redisClient,
		generator:   generator,
		logger:      log,
		reportCache: cache.New(reportCacheTTL, reportCacheCleanup),
	}
}

// Submit validates the request, persists a pending job, and enqueues it for
// the worker. The job row exists before the stream entry, so a consumer can
// always load what it dequeues.
func (s *JobService) Submit(ctx context.Context, req *dto.CreateJobRequest) (*entity.GenerationJob, error) {
	genReq := &dto.GenerationRequest{
		Domain:      req.Domain,
		DatasetType: req.DatasetType,
		NumRecords:  req.NumRecords,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Format:      req.Format,
	}
	if err := s.generator.ValidateRequest(genReq); err != nil {
		return nil, err
	}

	job := &entity.GenerationJob{
		Domain:      genReq.Domain,
		DatasetType: genReq.DatasetType,
		NumRecords:  genReq.NumRecords,
		Format:      genReq.Format,
		StartDate:   genReq.StartDate,
		EndDate:     genReq.EndDate,
		Status:      entity.JobStatusPending,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.enqueue(ctx, job.ID); err != nil {
		job.Status = entity.JobStatusFailed
		job.ErrorMessage = toNullString(err.Error())
		if updErr := s.jobRepo.Update(ctx, job); updErr != nil {
			s.logger.Error("Failed to mark unenqueued job as failed", logger.ErrorField(updErr))
		}
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	s.logger.Info("Generation job submitted",
		logger.IntField("job_id", int(job.ID)),
		logger.StringField("domain", job.Domain),
		logger.StringField("dataset_type", job.DatasetType),
	)
	return job, nil
}

func (s *JobService) enqueue(ctx context.Context, jobID uint) error {
	return s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamJobExecution,
		Values: map[string]any{"job_id": strconv.FormatUint(uint64(jobID), 10)},
	}).Err()
}

// Get retrieves a job by ID.
func (s *JobService) Get(ctx context.Context, id uint) (*entity.GenerationJob, error) {
	return s.jobRepo.FindByID(ctx, id)
}

// List retrieves all jobs, newest first.
func (s *JobService) List(ctx context.Context) ([]entity.GenerationJob, error) {
	return s.jobRepo.FindAll(ctx)
}

// GetJobReport returns the stored quality report for a completed job. Reports
// are immutable once written, so they are served from an in-process cache.
func (s *JobService) GetJobReport(ctx context.Context, id uint) (datatypes.JSON, error) {
	key := strconv.FormatUint(uint64(id), 10)
	if cached, ok := s.reportCache.Get(key); ok {
		return cached.(datatypes.JSON), nil
	}

	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status != entity.JobStatusCompleted || len(job.QualityReport) == 0 {
		return nil, fmt.Errorf("job %d has no quality report", id)
	}

	report := job.QualityReport
	s.reportCache.Set(key, report, cache.DefaultExpiration)
	return report, nil
}
