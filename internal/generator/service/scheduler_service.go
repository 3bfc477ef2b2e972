package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/dto"
	"golang-synth-datagen/internal/generator/repository"
	"golang-synth-datagen/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SchedulerService turns recurring schedules into generation jobs. It polls
// for due schedules on a fixed interval rather than holding in-process cron
// timers, so restarts never lose scheduled work.
type SchedulerService struct {
	scheduleRepo    repository.GenerationScheduleRepository
	jobService      *JobService
	logger          *logger.Logger
	cronParser      cron.Parser
	pollingInterval time.Duration
}

// NewSchedulerService creates a new SchedulerService.
func NewSchedulerService(scheduleRepo repository.GenerationScheduleRepository, jobService *JobService, log *logger.Logger, pollingInterval time.Duration) *SchedulerService {
	return &SchedulerService{
		scheduleRepo:    scheduleRepo,
		jobService:      jobService,
		logger:          log,
		cronParser:      cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		pollingInterval: pollingInterval,
	}
}

// Create validates and persists a new schedule with its first execution time
// precomputed.
func (s *SchedulerService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*entity.GenerationSchedule, error) {
	sched, err := s.cronParser.Parse(req.CronExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", req.CronExpression, err)
	}
	if err := s.jobService.generator.ValidateRequest(&dto.GenerationRequest{
		Domain:      req.Domain,
		DatasetType: req.DatasetType,
		NumRecords:  req.NumRecords,
		Format:      req.Format,
	}); err != nil {
		return nil, err
	}

	schedule := &entity.GenerationSchedule{
		Name:           req.Name,
		CronExpression: req.CronExpression,
		Domain:         req.Domain,
		DatasetType:    req.DatasetType,
		NumRecords:     req.NumRecords,
		Format:         req.Format,
		IsActive:       true,
		NextExecution:  sql.NullTime{Time: sched.Next(time.Now()), Valid: true},
	}
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

// List retrieves all schedules.
func (s *SchedulerService) List(ctx context.Context) ([]entity.GenerationSchedule, error) {
	return s.scheduleRepo.FindAll(ctx)
}

// Delete removes a schedule.
func (s *SchedulerService) Delete(ctx context.Context, id uint) error {
	return s.scheduleRepo.Delete(ctx, id)
}

// Run polls for due schedules until the context is canceled.
func (s *SchedulerService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	s.logger.Info("Scheduler started", logger.StringField("polling_interval", s.pollingInterval.String()))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			if err := s.dispatchDue(ctx); err != nil {
				s.logger.Error("Schedule dispatch failed", logger.ErrorField(err))
			}
		}
	}
}

// dispatchDue submits one job per due schedule and advances its next
// execution. A schedule whose submission fails stays due and is retried on
// the next poll.
func (s *SchedulerService) dispatchDue(ctx context.Context) error {
	schedules, err := s.scheduleRepo.FindDue(ctx)
	if err != nil {
		return fmt.Errorf("failed to find due schedules: %w", err)
	}

	for i := range schedules {
		schedule := &schedules[i]
		job, err := s.jobService.Submit(ctx, &dto.CreateJobRequest{
			Domain:      schedule.Domain,
			DatasetType: schedule.DatasetType,
			NumRecords:  schedule.NumRecords,
			Format:      schedule.Format,
		})
		if err != nil {
			s.logger.Error("Failed to submit scheduled job",
				logger.StringField("schedule", schedule.Name),
				logger.ErrorField(err),
			)
			continue
		}

		now := time.Now()
		schedule.LastExecution = sql.NullTime{Time: now, Valid: true}
		if sched, parseErr := s.cronParser.Parse(schedule.CronExpression); parseErr == nil {
			schedule.NextExecution = sql.NullTime{Time: sched.Next(now), Valid: true}
		} else {
			schedule.IsActive = false
			s.logger.Error("Deactivating schedule with unparseable cron expression",
				logger.StringField("schedule", schedule.Name),
				logger.ErrorField(parseErr),
			)
		}
		if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
			s.logger.Error("Failed to advance schedule",
				logger.StringField("schedule", schedule.Name),
				logger.ErrorField(err),
			)
			continue
		}

		s.logger.Info("Scheduled job dispatched",
			logger.StringField("schedule", schedule.Name),
			logger.IntField("job_id", int(job.ID)),
		)
	}
	return nil
}
