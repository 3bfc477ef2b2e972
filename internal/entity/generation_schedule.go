package entity

import (
	"database/sql"
	"time"
)

// GenerationSchedule is a recurring generation request driven by a cron
// expression. Due schedules are turned into GenerationJobs by the scheduler.
type GenerationSchedule struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"type:varchar(100);not null" json:"name"`
	CronExpression string       `gorm:"type:varchar(100);not null" json:"cron_expression"`
	Domain         string       `gorm:"type:varchar(50);not null" json:"domain"`
	DatasetType    string       `gorm:"type:varchar(100);not null" json:"dataset_type"`
	NumRecords     int          `gorm:"not null" json:"num_records"`
	Format         string       `gorm:"type:varchar(20);not null" json:"format"`
	IsActive       bool         `gorm:"not null;default:true" json:"is_active"`
	LastExecution  sql.NullTime `json:"last_execution"`
	NextExecution  sql.NullTime `json:"next_execution"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the GenerationSchedule model.
func (GenerationSchedule) TableName() string {
	return "generation_schedules"
}
