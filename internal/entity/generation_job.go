package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted means the dataset was generated and exported.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCompletedEmpty means every batch failed or yielded nothing.
	// This is a soft outcome, distinct from a failed job.
	JobStatusCompletedEmpty JobStatus = "completed_empty"
	JobStatusFailed         JobStatus = "failed"
)

// GenerationJob is one request to generate and export a synthetic dataset.
type GenerationJob struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Domain           string         `gorm:"type:varchar(50);not null" json:"domain"`
	DatasetType      string         `gorm:"type:varchar(100);not null" json:"dataset_type"`
	NumRecords       int            `gorm:"not null" json:"num_records"`
	Format           string         `gorm:"type:varchar(20);not null" json:"format"`
	StartDate        string         `gorm:"type:varchar(10)" json:"start_date"`
	EndDate          string         `gorm:"type:varchar(10)" json:"end_date"`
	Status           JobStatus      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	GeneratedRecords int            `json:"generated_records"`
	OutputPath       sql.NullString `gorm:"type:text" json:"output_path"`
	ErrorMessage     sql.NullString `gorm:"type:text" json:"error_message"`
	QualityReport    datatypes.JSON `gorm:"type:jsonb" json:"quality_report"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	StartedAt        sql.NullTime   `json:"started_at"`
	CompletedAt      sql.NullTime   `json:"completed_at"`
}

// TableName specifies the table name for the GenerationJob model.
func (GenerationJob) TableName() string {
	return "generation_jobs"
}
