// Package dataset assembles validated LLM records into a typed tabular
// structure and stamps provenance metadata onto it.
package dataset

import (
	"sort"
	"strings"
	"time"

	"golang-synth-datagen/internal/entity"
)

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	TypeNumeric  ColumnType = "numeric"
	TypeDateTime ColumnType = "datetime"
	TypeBoolean  ColumnType = "boolean"
	TypeText     ColumnType = "text"
)

const (
	// ReservedPrefix marks metadata columns added by AddMetadata. Consumers
	// strip reserved columns before user-facing previews; the dataset itself
	// never does.
	ReservedPrefix = "_"
	// MetaPrefix prefixes caller-supplied metadata tags.
	MetaPrefix = "_meta_"

	generatedAtColumn = "_generated_at"
	generatorColumn   = "_generator"
	generatedAtLayout = "2006-01-02 15:04:05"
)

// Column is one named, typed column. Cell values are float64, time.Time,
// bool, string, or nil.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Dataset is an ordered collection of equally sized columns.
type Dataset struct {
	Columns []Column
	rows    int
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// FromRecords builds a Dataset from validated records. An empty input yields
// an empty dataset (zero rows, zero columns), which callers must treat as a
// distinct "no data produced" outcome rather than an error.
//
// Column order is deterministic: columns appear in order of first appearance
// across records, with the keys of each newly seen record added in sorted
// order.
func FromRecords(records []entity.Record) *Dataset {
	if len(records) == 0 {
		return &Dataset{}
	}

	var order []string
	seen := make(map[string]bool)
	for _, rec := range records {
		newKeys := make([]string, 0, len(rec))
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				newKeys = append(newKeys, k)
			}
		}
		sort.Strings(newKeys)
		order = append(order, newKeys...)
	}

	ds := &Dataset{rows: len(records)}
	for _, name := range order {
		values := make([]any, len(records))
		for i, rec := range records {
			if v, ok := rec[name]; ok {
				values[i] = v
			}
		}
		ds.Columns = append(ds.Columns, buildColumn(name, values))
	}
	return ds
}

// buildColumn infers the column type and normalizes cell values. Columns
// whose name contains "date" are parsed as timestamps; unparseable cells
// become nil rather than failing the whole conversion.
func buildColumn(name string, values []any) Column {
	if strings.Contains(strings.ToLower(name), "date") {
		converted := make([]any, len(values))
		for i, v := range values {
			converted[i] = parseDateValue(v)
		}
		return Column{Name: name, Type: TypeDateTime, Values: converted}
	}

	allNumeric, allBool := true, true
	nonNull := 0
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			continue
		case float64:
			allBool = false
			nonNull++
		case int:
			values[i] = float64(val)
			allBool = false
			nonNull++
		case int64:
			values[i] = float64(val)
			allBool = false
			nonNull++
		case bool:
			allNumeric = false
			nonNull++
		default:
			allNumeric = false
			allBool = false
			nonNull++
		}
	}

	switch {
	case nonNull > 0 && allNumeric:
		return Column{Name: name, Type: TypeNumeric, Values: values}
	case nonNull > 0 && allBool:
		return Column{Name: name, Type: TypeBoolean, Values: values}
	default:
		return Column{Name: name, Type: TypeText, Values: values}
	}
}

func parseDateValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t
			}
		}
		return nil
	default:
		return nil
	}
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// ColumnNames returns column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// Row returns the values of row i in column order.
func (d *Dataset) Row(i int) []any {
	row := make([]any, len(d.Columns))
	for c := range d.Columns {
		row[c] = d.Columns[c].Values[i]
	}
	return row
}

// AddMetadata appends reserved metadata columns: one "_meta_<key>" column per
// caller-supplied tag (in sorted key order), the generation timestamp at
// second precision, and the generator's identifying name. No-op on an empty
// dataset.
func (d *Dataset) AddMetadata(tags map[string]any, generatorName string, now time.Time) {
	if d.rows == 0 {
		return
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d.appendConstantColumn(MetaPrefix+k, tags[k])
	}
	d.appendConstantColumn(generatedAtColumn, now.Format(generatedAtLayout))
	d.appendConstantColumn(generatorColumn, generatorName)
}

func (d *Dataset) appendConstantColumn(name string, value any) {
	colType := TypeText
	switch val := value.(type) {
	case bool:
		colType = TypeBoolean
	case float64:
		colType = TypeNumeric
	case int:
		colType = TypeNumeric
		value = float64(val)
	case int64:
		colType = TypeNumeric
		value = float64(val)
	}
	values := make([]any, d.rows)
	for i := range values {
		values[i] = value
	}
	d.Columns = append(d.Columns, Column{Name: name, Type: colType, Values: values})
}

// IsReserved reports whether a column name belongs to the reserved metadata
// namespace.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}
