package telegram

import (
	"database/sql"
	"testing"

	"golang-synth-datagen/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatJobResult(t *testing.T) {
	job := &entity.GenerationJob{
		ID:               7,
		Domain:           "Banking",
		DatasetType:      "Credit Scores",
		NumRecords:       100,
		GeneratedRecords: 95,
		Status:           entity.JobStatusCompleted,
		OutputPath:       sql.NullString{String: "data/output/banking_credit_scores_20250301_103000.csv", Valid: true},
	}

	msg := FormatJobResult(job)
	assert.Contains(t, msg, "Banking")
	assert.Contains(t, msg, "Credit Scores")
	assert.Contains(t, msg, "95/100")

	job.Status = entity.JobStatusCompletedEmpty
	assert.Contains(t, FormatJobResult(job), "no data")

	job.Status = entity.JobStatusFailed
	job.ErrorMessage = sql.NullString{String: "export failed", Valid: true}
	assert.Contains(t, FormatJobResult(job), "export failed")
}
