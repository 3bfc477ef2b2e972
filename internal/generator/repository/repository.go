package repository

import (
	"context"
	"errors"

	"golang-synth-datagen/internal/entity"
)

// ErrInvalidPayload marks a response that came back from the model but could
// not be parsed as JSON records. It is distinct from transport failures so
// callers can tell the two error kinds apart.
var ErrInvalidPayload = errors.New("invalid JSON payload in model response")

// AIRepository defines the interface for LLM-backed text and record
// generation.
type AIRepository interface {
	// Generate returns the raw text completion for a prompt.
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
	// GenerateJSON calls Generate and parses the response into records,
	// stripping Markdown code fences and normalizing a bare JSON object into
	// a single-element list.
	GenerateJSON(ctx context.Context, prompt string, temperature float64) ([]entity.Record, error)
}

// GenerationJobRepository defines the interface for job persistence.
type GenerationJobRepository interface {
	Create(ctx context.Context, job *entity.GenerationJob) error
	FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error)
	FindAll(ctx context.Context) ([]entity.GenerationJob, error)
	Update(ctx context.Context, job *entity.GenerationJob) error
}

// GenerationScheduleRepository defines the interface for recurring-generation
// schedules.
type GenerationScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.GenerationSchedule) error
	FindAll(ctx context.Context) ([]entity.GenerationSchedule, error)
	FindDue(ctx context.Context) ([]entity.GenerationSchedule, error)
	Update(ctx context.Context, schedule *entity.GenerationSchedule) error
	Delete(ctx context.Context, id uint) error
}
