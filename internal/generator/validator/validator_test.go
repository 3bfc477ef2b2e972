package validator

import (
	"testing"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestFilter_DropsRecordsMissingFields(t *testing.T) {
	v := New(logger.NewNop())

	records := []entity.Record{
		{"ticker": "AAPL", "close": 191.2, "volume": 1000.0},
		{"ticker": "MSFT", "close": 410.5, "volume": 2000.0},
		{"ticker": "GOOG", "close": 170.1},
	}

	valid := v.Filter(records)
	assert.Len(t, valid, 2)
	assert.Equal(t, "AAPL", valid[0]["ticker"])
	assert.Equal(t, "MSFT", valid[1]["ticker"])
}

func TestFilter_KeepsRecordsWithExtraFields(t *testing.T) {
	v := New(logger.NewNop())

	records := []entity.Record{
		{"a": 1.0, "b": 2.0},
		{"a": 3.0, "b": 4.0, "c": 5.0},
	}

	valid := v.Filter(records)
	assert.Len(t, valid, 2)
}

func TestFilter_EmptyInput(t *testing.T) {
	v := New(logger.NewNop())
	assert.Empty(t, v.Filter(nil))
	assert.Empty(t, v.Filter([]entity.Record{}))
}

func TestFilter_Idempotent(t *testing.T) {
	v := New(logger.NewNop())

	records := []entity.Record{
		{"a": 1.0, "b": 2.0},
		{"a": 3.0},
		{"a": 4.0, "b": 5.0},
	}

	once := v.Filter(records)
	twice := v.Filter(once)
	assert.Equal(t, once, twice)
}
