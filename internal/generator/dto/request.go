package dto

import (
	"golang-synth-datagen/internal/entity"
)

// GenerationRequest describes one synthetic dataset to generate. It is
// immutable once submitted.
type GenerationRequest struct {
	Domain      string `json:"domain"`
	DatasetType string `json:"dataset_type"`
	NumRecords  int    `json:"num_records"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Format      string `json:"format"`
}

// GenerationResult is the outcome of running one GenerationRequest.
type GenerationResult struct {
	Status           entity.JobStatus `json:"status"`
	RequestedRecords int              `json:"requested_records"`
	GeneratedRecords int              `json:"generated_records"`
	OutputPath       string           `json:"output_path,omitempty"`
	Report           *QualityReport   `json:"report,omitempty"`
}

// CreateJobRequest is the HTTP payload for submitting a generation job.
type CreateJobRequest struct {
	Domain      string `json:"domain"`
	DatasetType string `json:"dataset_type"`
	NumRecords  int    `json:"num_records"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Format      string `json:"format"`
}

// CreateScheduleRequest is the HTTP payload for a recurring generation.
type CreateScheduleRequest struct {
	Name           string `json:"name"`
	CronExpression string `json:"cron_expression"`
	Domain         string `json:"domain"`
	DatasetType    string `json:"dataset_type"`
	NumRecords     int    `json:"num_records"`
	Format         string `json:"format"`
}

// DomainInfo describes one domain of the generation catalog.
type DomainInfo struct {
	Domain       string   `json:"domain"`
	Description  string   `json:"description"`
	DatasetTypes []string `json:"dataset_types"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
