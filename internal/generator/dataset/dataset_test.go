package dataset

import (
	"testing"
	"time"

	"golang-synth-datagen/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecords_Empty(t *testing.T) {
	ds := FromRecords(nil)
	assert.Equal(t, 0, ds.NumRows())
	assert.Equal(t, 0, ds.NumColumns())
}

func TestFromRecords_TypeInference(t *testing.T) {
	ds := FromRecords([]entity.Record{
		{"price": 10.5, "ticker": "AAPL", "active": true, "trade_date": "2024-03-01"},
		{"price": 11.0, "ticker": "MSFT", "active": false, "trade_date": "2024-03-02"},
	})

	require.Equal(t, 2, ds.NumRows())
	require.Equal(t, 4, ds.NumColumns())

	price, ok := ds.Column("price")
	require.True(t, ok)
	assert.Equal(t, TypeNumeric, price.Type)

	ticker, ok := ds.Column("ticker")
	require.True(t, ok)
	assert.Equal(t, TypeText, ticker.Type)

	active, ok := ds.Column("active")
	require.True(t, ok)
	assert.Equal(t, TypeBoolean, active.Type)

	date, ok := ds.Column("trade_date")
	require.True(t, ok)
	assert.Equal(t, TypeDateTime, date.Type)
	parsed, isTime := date.Values[0].(time.Time)
	require.True(t, isTime)
	assert.Equal(t, 2024, parsed.Year())
}

func TestFromRecords_UnparseableDateBecomesNil(t *testing.T) {
	ds := FromRecords([]entity.Record{
		{"event_date": "2024-05-01"},
		{"event_date": "not a date"},
	})

	col, ok := ds.Column("event_date")
	require.True(t, ok)
	assert.Equal(t, TypeDateTime, col.Type)
	assert.NotNil(t, col.Values[0])
	assert.Nil(t, col.Values[1])
}

func TestFromRecords_AlternateDateFormats(t *testing.T) {
	ds := FromRecords([]entity.Record{
		{"event_date": "2024/03/01"},
		{"event_date": "March 1, 2024"},
		{"event_date": "Mar 1, 2024"},
		{"event_date": "01 Mar 2024"},
	})

	col, ok := ds.Column("event_date")
	require.True(t, ok)
	for i, v := range col.Values {
		parsed, isTime := v.(time.Time)
		require.True(t, isTime, "row %d", i)
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 1, parsed.Day())
	}
}

func TestFromRecords_MissingKeysBecomeNil(t *testing.T) {
	ds := FromRecords([]entity.Record{
		{"a": 1.0},
		{"a": 2.0, "b": "x"},
	})

	b, ok := ds.Column("b")
	require.True(t, ok)
	assert.Nil(t, b.Values[0])
	assert.Equal(t, "x", b.Values[1])
}

func TestFromRecords_ColumnOrderDeterministic(t *testing.T) {
	records := []entity.Record{
		{"b": 1.0, "a": 2.0},
		{"c": 3.0, "a": 4.0},
	}
	first := FromRecords(records).ColumnNames()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, FromRecords(records).ColumnNames())
	}
	// Keys of the first record sorted, then new keys of later records.
	assert.Equal(t, []string{"a", "b", "c"}, first)
}

func TestAddMetadata(t *testing.T) {
	ds := FromRecords([]entity.Record{
		{"v": 1.0},
		{"v": 2.0},
	})
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	ds.AddMetadata(map[string]any{"is_synthetic": true, "domain": "banking"}, "datagen", now)

	require.Equal(t, 5, ds.NumColumns())
	assert.Equal(t, []string{"v", "_meta_domain", "_meta_is_synthetic", "_generated_at", "_generator"}, ds.ColumnNames())

	synth, ok := ds.Column("_meta_is_synthetic")
	require.True(t, ok)
	assert.Equal(t, TypeBoolean, synth.Type)
	assert.Equal(t, true, synth.Values[0])
	assert.Equal(t, true, synth.Values[1])

	genAt, ok := ds.Column("_generated_at")
	require.True(t, ok)
	assert.Equal(t, "2025-03-01 10:30:00", genAt.Values[0])

	gen, ok := ds.Column("_generator")
	require.True(t, ok)
	assert.Equal(t, "datagen", gen.Values[0])
}

func TestAddMetadata_NoOpOnEmptyDataset(t *testing.T) {
	ds := FromRecords(nil)
	ds.AddMetadata(map[string]any{"is_synthetic": true}, "datagen", time.Now())
	assert.Equal(t, 0, ds.NumColumns())
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("_meta_domain"))
	assert.True(t, IsReserved("_generated_at"))
	assert.False(t, IsReserved("price"))
}
