package telegram

import (
	"fmt"

	"golang-synth-datagen/internal/entity"
)

// FormatJobResult renders a generation job outcome as a Markdown message.
func FormatJobResult(job *entity.GenerationJob) string {
	switch job.Status {
	case entity.JobStatusCompleted:
		return fmt.Sprintf(
			"✅ *Dataset generated*\n*Domain:* %s\n*Dataset:* %s\n*Records:* %d/%d\n*File:* `%s`",
			job.Domain, job.DatasetType, job.GeneratedRecords, job.NumRecords, job.OutputPath.String,
		)
	case entity.JobStatusCompletedEmpty:
		return fmt.Sprintf(
			"⚠️ *Generation produced no data*\n*Domain:* %s\n*Dataset:* %s\n*Requested:* %d records",
			job.Domain, job.DatasetType, job.NumRecords,
		)
	case entity.JobStatusFailed:
		return fmt.Sprintf(
			"❌ *Generation failed*\n*Domain:* %s\n*Dataset:* %s\n*Error:* %s",
			job.Domain, job.DatasetType, job.ErrorMessage.String,
		)
	default:
		return fmt.Sprintf("ℹ️ Generation job %d is %s", job.ID, job.Status)
	}
}
