// Package metrics computes data-quality statistics over assembled datasets.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang-synth-datagen/internal/generator/dataset"
	"golang-synth-datagen/internal/generator/dto"
)

// UniquenessThreshold is the expected uniqueness ratio for identifier-like
// columns. The literal value is long-standing policy; behavior parity depends
// on it.
const UniquenessThreshold = 0.90

// iqrFenceFactor sets the Tukey fences at Q1 - 3*IQR and Q3 + 3*IQR.
const iqrFenceFactor = 3.0

const topValueCount = 5

// Calculator derives a QualityReport from a Dataset. It is a pure function
// of the dataset: no external calls, nothing cached.
type Calculator struct{}

// NewCalculator creates a new Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// CalculateAll computes every metric section. Every column appears in the
// completeness and uniqueness sections; columns with zero non-null values are
// omitted from distribution.
func (c *Calculator) CalculateAll(ds *dataset.Dataset) *dto.QualityReport {
	return &dto.QualityReport{
		Basic:        c.calculateBasic(ds),
		Completeness: c.calculateCompleteness(ds),
		Uniqueness:   c.calculateUniqueness(ds),
		Validity:     c.calculateValidity(ds),
		Distribution: c.calculateDistributions(ds),
	}
}

func (c *Calculator) calculateBasic(ds *dataset.Dataset) dto.BasicMetrics {
	return dto.BasicMetrics{
		TotalRecords: ds.NumRows(),
		TotalColumns: ds.NumColumns(),
		Columns:      ds.ColumnNames(),
	}
}

func (c *Calculator) calculateCompleteness(ds *dataset.Dataset) dto.CompletenessMetrics {
	rows := ds.NumRows()
	totalCells := rows * ds.NumColumns()
	totalNulls := 0

	byColumn := make(map[string]dto.ColumnCompleteness, ds.NumColumns())
	for _, col := range ds.Columns {
		nulls := 0
		for _, v := range col.Values {
			if v == nil {
				nulls++
			}
		}
		totalNulls += nulls

		pct := 0.0
		if rows > 0 {
			pct = round2(float64(rows-nulls) / float64(rows) * 100)
		}
		byColumn[col.Name] = dto.ColumnCompleteness{
			CompletenessPct: pct,
			NullCount:       nulls,
		}
	}

	overall := 0.0
	if totalCells > 0 {
		overall = round2(float64(totalCells-totalNulls) / float64(totalCells) * 100)
	}
	return dto.CompletenessMetrics{
		OverallCompletenessPct: overall,
		TotalNullCells:         totalNulls,
		ByColumn:               byColumn,
	}
}

func (c *Calculator) calculateUniqueness(ds *dataset.Dataset) dto.UniquenessMetrics {
	rows := ds.NumRows()
	byColumn := make(map[string]dto.ColumnUniqueness, ds.NumColumns())

	for _, col := range ds.Columns {
		// Nulls are not a value: they never enter the distinct set.
		distinct := make(map[string]struct{}, rows)
		for _, v := range col.Values {
			if v == nil {
				continue
			}
			distinct[cellKey(v)] = struct{}{}
		}
		unique := len(distinct)
		pct := 0.0
		if rows > 0 {
			pct = round2(float64(unique) / float64(rows) * 100)
		}
		byColumn[col.Name] = dto.ColumnUniqueness{
			UniqueCount:    unique,
			DuplicateCount: rows - unique,
			UniquenessPct:  pct,
		}
	}

	duplicates := 0
	if rows > 0 && ds.NumColumns() > 0 {
		rowsSeen := make(map[string]struct{}, rows)
		for i := 0; i < rows; i++ {
			var sb strings.Builder
			for _, v := range ds.Row(i) {
				sb.WriteString(cellKey(v))
				sb.WriteByte('\x1f')
			}
			key := sb.String()
			if _, ok := rowsSeen[key]; ok {
				duplicates++
			} else {
				rowsSeen[key] = struct{}{}
			}
		}
	}

	return dto.UniquenessMetrics{ByColumn: byColumn, DuplicateRows: duplicates}
}

func (c *Calculator) calculateValidity(ds *dataset.Dataset) dto.ValidityMetrics {
	byColumn := make(map[string]dto.ColumnValidity, ds.NumColumns())

	for _, col := range ds.Columns {
		nums := numericValues(col)
		nonNull := nonNullCount(col)

		if nonNull == 0 {
			byColumn[col.Name] = dto.ColumnValidity{
				DataType: string(col.Type),
				ValidPct: 0,
			}
			continue
		}

		validity := dto.ColumnValidity{
			DataType: string(col.Type),
			ValidPct: 100.0,
		}

		if col.Type == dataset.TypeNumeric && len(nums) > 0 {
			sorted := append([]float64(nil), nums...)
			sort.Float64s(sorted)
			q1 := quantile(sorted, 0.25)
			q3 := quantile(sorted, 0.75)
			iqr := q3 - q1
			lower := q1 - iqrFenceFactor*iqr
			upper := q3 + iqrFenceFactor*iqr

			outliers := 0
			for _, v := range nums {
				if v < lower || v > upper {
					outliers++
				}
			}
			pct := round2(float64(outliers) / float64(len(nums)) * 100)
			validity.OutlierCount = &outliers
			validity.OutlierPct = &pct
		}

		byColumn[col.Name] = validity
	}

	return dto.ValidityMetrics{ByColumn: byColumn}
}

func (c *Calculator) calculateDistributions(ds *dataset.Dataset) map[string]dto.ColumnDistribution {
	distributions := make(map[string]dto.ColumnDistribution)

	for _, col := range ds.Columns {
		if nonNullCount(col) == 0 {
			continue
		}

		switch col.Type {
		case dataset.TypeNumeric:
			nums := numericValues(col)
			if len(nums) == 0 {
				continue
			}
			sorted := append([]float64(nil), nums...)
			sort.Float64s(sorted)

			distributions[col.Name] = dto.ColumnDistribution{
				Mean:   f64ptr(mean(nums)),
				Median: f64ptr(quantile(sorted, 0.5)),
				Std:    f64ptr(stddev(nums)),
				Min:    f64ptr(sorted[0]),
				Max:    f64ptr(sorted[len(sorted)-1]),
				Q25:    f64ptr(quantile(sorted, 0.25)),
				Q75:    f64ptr(quantile(sorted, 0.75)),
			}
		case dataset.TypeDateTime:
			var minDate, maxDate time.Time
			found := false
			for _, v := range col.Values {
				t, ok := v.(time.Time)
				if !ok {
					continue
				}
				if !found || t.Before(minDate) {
					minDate = t
				}
				if !found || t.After(maxDate) {
					maxDate = t
				}
				found = true
			}
			if !found {
				continue
			}
			span := int(maxDate.Sub(minDate).Hours() / 24)
			distributions[col.Name] = dto.ColumnDistribution{
				MinDate:       minDate.Format("2006-01-02 15:04:05"),
				MaxDate:       maxDate.Format("2006-01-02 15:04:05"),
				DateRangeDays: &span,
			}
		default:
			counts := make(map[string]int)
			for _, v := range col.Values {
				if v == nil {
					continue
				}
				counts[cellKey(v)]++
			}
			distinct := len(counts)
			distributions[col.Name] = dto.ColumnDistribution{
				TopValues:   topValues(counts, topValueCount),
				UniqueCount: &distinct,
			}
		}
	}

	return distributions
}

// FlagLowUniqueness reports identifier-like columns whose uniqueness falls
// below the expected threshold. Used for logging only; it never fails a job.
func (c *Calculator) FlagLowUniqueness(ds *dataset.Dataset, report *dto.QualityReport) []string {
	var issues []string
	for _, col := range ds.Columns {
		if !identifierLike(col.Name) {
			continue
		}
		u, ok := report.Uniqueness.ByColumn[col.Name]
		if !ok {
			continue
		}
		if u.UniquenessPct < UniquenessThreshold*100 {
			issues = append(issues, fmt.Sprintf(
				"column %q has only %.1f%% unique values (expected %.0f%%)",
				col.Name, u.UniquenessPct, UniquenessThreshold*100,
			))
		}
	}
	return issues
}

// identifierLike reports whether a column name looks like an identifier:
// "id" as its own underscore-separated token ("customer_id", "id", "id_code")
// or a "_number" suffix. Substring matches like "bid_price" do not count.
func identifierLike(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "_number") {
		return true
	}
	for _, token := range strings.Split(lower, "_") {
		if token == "id" {
			return true
		}
	}
	return false
}

func nonNullCount(col dataset.Column) int {
	n := 0
	for _, v := range col.Values {
		if v != nil {
			n++
		}
	}
	return n
}

func numericValues(col dataset.Column) []float64 {
	var nums []float64
	for _, v := range col.Values {
		if f, ok := v.(float64); ok {
			nums = append(nums, f)
		}
	}
	return nums
}

// quantile computes the q-th quantile over sorted values using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the sample standard deviation. A single-value column reports 0,
// never NaN.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func topValues(counts map[string]int, n int) map[string]int {
	type pair struct {
		value string
		count int
	}
	pairs := make([]pair, 0, len(counts))
	for v, c := range counts {
		pairs = append(pairs, pair{v, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].value < pairs[j].value
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	top := make(map[string]int, len(pairs))
	for _, p := range pairs {
		top[p.value] = p.count
	}
	return top
}

func cellKey(v any) string {
	switch val := v.(type) {
	case nil:
		return "\x00"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func f64ptr(v float64) *float64 {
	return &v
}
