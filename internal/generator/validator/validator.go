// Package validator filters generated records down to a consistent schema.
package validator

import (
	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/pkg/logger"
)

// Validator drops records that do not match the field set of the first record
// in their batch. It checks key presence only, never value types or ranges;
// the LLM is relied upon for value plausibility.
type Validator struct {
	logger *logger.Logger
}

// New creates a new Validator.
func New(log *logger.Logger) *Validator {
	return &Validator{logger: log}
}

// Filter returns the records whose key set is a superset of the first
// record's keys. Empty input yields empty output. Filter is idempotent:
// running it over an already filtered set returns the same records.
func (v *Validator) Filter(records []entity.Record) []entity.Record {
	if len(records) == 0 {
		return records
	}

	expected := make([]string, 0, len(records[0]))
	for k := range records[0] {
		expected = append(expected, k)
	}

	valid := make([]entity.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasKeys(expected) {
			valid = append(valid, rec)
		} else {
			v.logger.Warn("Dropping record with missing fields",
				logger.IntField("field_count", len(rec)),
				logger.IntField("expected_fields", len(expected)),
			)
		}
	}

	if len(valid) < len(records) {
		v.logger.Info("Record validation dropped records",
			logger.IntField("kept", len(valid)),
			logger.IntField("total", len(records)),
		)
	}
	return valid
}
