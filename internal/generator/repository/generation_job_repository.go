package repository

import (
	"context"

	"golang-synth-datagen/internal/entity"

	"gorm.io/gorm"
)

// NewGenerationJobRepository creates a new GORM-based job repository.
func NewGenerationJobRepository(db *gorm.DB) GenerationJobRepository {
	return &generationJobRepository{db: db}
}

type generationJobRepository struct {
	db *gorm.DB
}

// Create persists a new generation job.
func (r *generationJobRepository) Create(ctx context.Context, job *entity.GenerationJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID retrieves a job by its ID.
func (r *generationJobRepository) FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error) {
	var job entity.GenerationJob
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAll retrieves all jobs, newest first.
func (r *generationJobRepository) FindAll(ctx context.Context) ([]entity.GenerationJob, error) {
	var jobs []entity.GenerationJob
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates an existing job.
func (r *generationJobRepository) Update(ctx context.Context, job *entity.GenerationJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}
