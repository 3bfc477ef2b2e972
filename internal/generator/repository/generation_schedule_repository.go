package repository

import (
	"context"
	"time"

	"golang-synth-datagen/internal/entity"

	"gorm.io/gorm"
)

// NewGenerationScheduleRepository creates a new GORM-based schedule
// repository.
func NewGenerationScheduleRepository(db *gorm.DB) GenerationScheduleRepository {
	return &generationScheduleRepository{db: db}
}

type generationScheduleRepository struct {
	db *gorm.DB
}

// Create persists a new schedule.
func (r *generationScheduleRepository) Create(ctx context.Context, schedule *entity.GenerationSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// FindAll retrieves all schedules.
func (r *generationScheduleRepository) FindAll(ctx context.Context) ([]entity.GenerationSchedule, error) {
	var schedules []entity.GenerationSchedule
	if err := r.db.WithContext(ctx).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindDue finds active schedules whose next execution is unset or in the
// past.
func (r *generationScheduleRepository) FindDue(ctx context.Context) ([]entity.GenerationSchedule, error) {
	var schedules []entity.GenerationSchedule
	now := time.Now()
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, now).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// Update updates an existing schedule.
func (r *generationScheduleRepository) Update(ctx context.Context, schedule *entity.GenerationSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

// Delete removes a schedule by ID.
func (r *generationScheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.GenerationSchedule{}, id).Error
}
