package metrics

import (
	"testing"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericDataset(values ...float64) *dataset.Dataset {
	records := make([]entity.Record, len(values))
	for i, v := range values {
		records[i] = entity.Record{"amount": v}
	}
	return dataset.FromRecords(records)
}

func TestCompleteness_FullDataset(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"a": 1.0, "b": "x"},
		{"a": 2.0, "b": "y"},
	})
	report := NewCalculator().CalculateAll(ds)

	assert.Equal(t, 100.0, report.Completeness.OverallCompletenessPct)
	assert.Equal(t, 0, report.Completeness.TotalNullCells)
}

func TestCompleteness_WithNulls(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"a": 1.0, "b": "x"},
		{"a": 2.0},
	})
	report := NewCalculator().CalculateAll(ds)

	// One null cell out of four.
	assert.Equal(t, 75.0, report.Completeness.OverallCompletenessPct)
	assert.Equal(t, 1, report.Completeness.TotalNullCells)
	assert.Equal(t, 50.0, report.Completeness.ByColumn["b"].CompletenessPct)
}

func TestCompleteness_SingleRow(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{{"a": 1.0}})
	report := NewCalculator().CalculateAll(ds)
	assert.Equal(t, 100.0, report.Completeness.OverallCompletenessPct)
}

func TestUniqueness_CountsDuplicates(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"id": "a"},
		{"id": "b"},
		{"id": "a"},
	})
	report := NewCalculator().CalculateAll(ds)

	u := report.Uniqueness.ByColumn["id"]
	assert.Equal(t, 2, u.UniqueCount)
	assert.Equal(t, 1, u.DuplicateCount)
	assert.InDelta(t, 66.67, u.UniquenessPct, 0.01)
	assert.Equal(t, 1, report.Uniqueness.DuplicateRows)
}

func TestUniqueness_NullsAreNotAValue(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"label": "a"},
		{"label": nil},
		{"label": nil},
	})
	report := NewCalculator().CalculateAll(ds)

	u := report.Uniqueness.ByColumn["label"]
	assert.Equal(t, 1, u.UniqueCount)
	assert.Equal(t, 2, u.DuplicateCount)
	assert.InDelta(t, 33.33, u.UniquenessPct, 0.01)
}

func TestUniqueness_AllNullColumn(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"a": 1.0, "b": nil},
		{"a": 2.0, "b": nil},
	})
	report := NewCalculator().CalculateAll(ds)

	u := report.Uniqueness.ByColumn["b"]
	assert.Equal(t, 0, u.UniqueCount)
	assert.Equal(t, 2, u.DuplicateCount)
	assert.Equal(t, 0.0, u.UniquenessPct)
}

func TestValidity_UniformValuesHaveNoOutliers(t *testing.T) {
	ds := numericDataset(5, 5, 5, 5, 5)
	report := NewCalculator().CalculateAll(ds)

	v := report.Validity.ByColumn["amount"]
	require.NotNil(t, v.OutlierCount)
	assert.Equal(t, 0, *v.OutlierCount)
	assert.Equal(t, 100.0, v.ValidPct)
}

func TestValidity_ExtremeOutlierCounted(t *testing.T) {
	ds := numericDataset(10, 11, 12, 11, 10, 12, 11, 10, 12, 11, 100000)
	report := NewCalculator().CalculateAll(ds)

	v := report.Validity.ByColumn["amount"]
	require.NotNil(t, v.OutlierCount)
	assert.Equal(t, 1, *v.OutlierCount)
	require.NotNil(t, v.OutlierPct)
	assert.InDelta(t, 9.09, *v.OutlierPct, 0.01)
}

func TestValidity_AllNullColumnReportsZero(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"a": 1.0, "b": nil},
		{"a": 2.0, "b": nil},
	})
	report := NewCalculator().CalculateAll(ds)

	b := report.Validity.ByColumn["b"]
	assert.Equal(t, 0.0, b.ValidPct)
	assert.Nil(t, b.OutlierCount)
	_, inDistribution := report.Distribution["b"]
	assert.False(t, inDistribution)
}

func TestDistribution_NumericStats(t *testing.T) {
	ds := numericDataset(1, 2, 3, 4, 5)
	report := NewCalculator().CalculateAll(ds)

	d, ok := report.Distribution["amount"]
	require.True(t, ok)
	assert.Equal(t, 3.0, *d.Mean)
	assert.Equal(t, 3.0, *d.Median)
	assert.Equal(t, 1.0, *d.Min)
	assert.Equal(t, 5.0, *d.Max)
	assert.Equal(t, 2.0, *d.Q25)
	assert.Equal(t, 4.0, *d.Q75)
	// Sample standard deviation of 1..5.
	assert.InDelta(t, 1.5811, *d.Std, 0.001)
}

func TestDistribution_SingleValueStdIsZero(t *testing.T) {
	ds := numericDataset(42)
	report := NewCalculator().CalculateAll(ds)

	d, ok := report.Distribution["amount"]
	require.True(t, ok)
	assert.Equal(t, 0.0, *d.Std)
}

func TestDistribution_DateRange(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"trade_date": "2024-01-01"},
		{"trade_date": "2024-01-11"},
		{"trade_date": "2024-01-05"},
	})
	report := NewCalculator().CalculateAll(ds)

	d, ok := report.Distribution["trade_date"]
	require.True(t, ok)
	assert.Equal(t, "2024-01-01 00:00:00", d.MinDate)
	assert.Equal(t, "2024-01-11 00:00:00", d.MaxDate)
	require.NotNil(t, d.DateRangeDays)
	assert.Equal(t, 10, *d.DateRangeDays)
}

func TestDistribution_CategoricalTopValues(t *testing.T) {
	records := []entity.Record{}
	for _, s := range []string{"a", "a", "a", "b", "b", "c", "d", "e", "f", "g"} {
		records = append(records, entity.Record{"sector": s})
	}
	report := NewCalculator().CalculateAll(dataset.FromRecords(records))

	d, ok := report.Distribution["sector"]
	require.True(t, ok)
	assert.Len(t, d.TopValues, 5)
	assert.Equal(t, 3, d.TopValues["a"])
	assert.Equal(t, 2, d.TopValues["b"])
	require.NotNil(t, d.UniqueCount)
	assert.Equal(t, 7, *d.UniqueCount)
}

func TestFlagLowUniqueness(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"customer_id": "c1", "sector": "x"},
		{"customer_id": "c1", "sector": "x"},
		{"customer_id": "c2", "sector": "x"},
	})
	c := NewCalculator()
	report := c.CalculateAll(ds)

	issues := c.FlagLowUniqueness(ds, report)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "customer_id")
}

func TestFlagLowUniqueness_SubstringMatchesAreNotIdentifiers(t *testing.T) {
	// "bid_price" contains "id" but is not an identifier column; heavy
	// duplication there must not warn.
	ds := dataset.FromRecords([]entity.Record{
		{"bid_price": 10.5, "deal_id": "d1"},
		{"bid_price": 10.5, "deal_id": "d2"},
		{"bid_price": 10.5, "deal_id": "d3"},
	})
	c := NewCalculator()
	report := c.CalculateAll(ds)
	assert.Empty(t, c.FlagLowUniqueness(ds, report))
}

func TestIdentifierLike(t *testing.T) {
	assert.True(t, identifierLike("customer_id"))
	assert.True(t, identifierLike("id"))
	assert.True(t, identifierLike("ID"))
	assert.True(t, identifierLike("account_number"))
	assert.False(t, identifierLike("bid_price"))
	assert.False(t, identifierLike("holiday_flag"))
	assert.False(t, identifierLike("liquidity"))
}

func TestFlagLowUniqueness_UniqueIDsPass(t *testing.T) {
	ds := dataset.FromRecords([]entity.Record{
		{"customer_id": "c1"},
		{"customer_id": "c2"},
		{"customer_id": "c3"},
	})
	c := NewCalculator()
	report := c.CalculateAll(ds)
	assert.Empty(t, c.FlagLowUniqueness(ds, report))
}
