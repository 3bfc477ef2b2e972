package dto

// QualityReport holds derived statistics over an assembled dataset. It is
// computed fresh on every call and never cached inside the calculator.
type QualityReport struct {
	Basic        BasicMetrics                  `json:"basic"`
	Completeness CompletenessMetrics           `json:"completeness"`
	Uniqueness   UniquenessMetrics             `json:"uniqueness"`
	Validity     ValidityMetrics               `json:"validity"`
	Distribution map[string]ColumnDistribution `json:"distribution"`
}

// BasicMetrics describes the dataset shape.
type BasicMetrics struct {
	TotalRecords int      `json:"total_records"`
	TotalColumns int      `json:"total_columns"`
	Columns      []string `json:"columns"`
}

// CompletenessMetrics reports null coverage overall and per column.
type CompletenessMetrics struct {
	OverallCompletenessPct float64                       `json:"overall_completeness_pct"`
	TotalNullCells         int                           `json:"total_null_cells"`
	ByColumn               map[string]ColumnCompleteness `json:"by_column"`
}

// ColumnCompleteness is the completeness of one column.
type ColumnCompleteness struct {
	CompletenessPct float64 `json:"completeness_pct"`
	NullCount       int     `json:"null_count"`
}

// UniquenessMetrics reports distinct counts per column and whole-row
// duplicates.
type UniquenessMetrics struct {
	ByColumn      map[string]ColumnUniqueness `json:"by_column"`
	DuplicateRows int                         `json:"duplicate_rows"`
}

// ColumnUniqueness is the uniqueness of one column.
type ColumnUniqueness struct {
	UniqueCount    int     `json:"unique_count"`
	DuplicateCount int     `json:"duplicate_count"`
	UniquenessPct  float64 `json:"uniqueness_pct"`
}

// ValidityMetrics reports statistical validity per column.
type ValidityMetrics struct {
	ByColumn map[string]ColumnValidity `json:"by_column"`
}

// ColumnValidity carries outlier statistics for numeric columns. Non-numeric
// columns report 100% validity with no outlier fields.
type ColumnValidity struct {
	DataType     string   `json:"data_type"`
	ValidPct     float64  `json:"valid_pct"`
	OutlierCount *int     `json:"outlier_count,omitempty"`
	OutlierPct   *float64 `json:"outlier_pct,omitempty"`
}

// ColumnDistribution summarizes one column's value distribution. Numeric,
// date, and categorical columns populate different field groups.
type ColumnDistribution struct {
	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Q25    *float64 `json:"q25,omitempty"`
	Q75    *float64 `json:"q75,omitempty"`

	MinDate       string `json:"min_date,omitempty"`
	MaxDate       string `json:"max_date,omitempty"`
	DateRangeDays *int   `json:"date_range_days,omitempty"`

	TopValues   map[string]int `json:"top_values,omitempty"`
	UniqueCount *int           `json:"unique_count,omitempty"`
}
