package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"golang-synth-datagen/internal/generator/dataset"
)

// toParquet writes the dataset as a snappy-compressed Parquet file. The
// schema is derived from the inferred column types; every field is OPTIONAL
// because any cell can be null.
func (e *Exporter) toParquet(ds *dataset.Dataset, filename string) (string, error) {
	path := filepath.Join(e.outputDir, filename+".parquet")

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return "", fmt.Errorf("failed to create parquet file: %w", err)
	}

	pw, err := writer.NewJSONWriter(buildParquetSchema(ds), fw, 4)
	if err != nil {
		_ = fw.Close()
		return "", fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	names := ds.ColumnNames()
	for i := 0; i < ds.NumRows(); i++ {
		row := make(map[string]any, len(names))
		for c, v := range ds.Row(i) {
			row[parquetFieldName(names[c])] = parquetValue(v)
		}
		// JSONWriter.Write only accepts a JSON-encoded string or []byte.
		encoded, err := json.Marshal(row)
		if err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return "", fmt.Errorf("failed to encode parquet row: %w", err)
		}
		if err := pw.Write(encoded); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return "", fmt.Errorf("failed to write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return "", fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("failed to close parquet file: %w", err)
	}
	return path, nil
}

func buildParquetSchema(ds *dataset.Dataset) string {
	fields := make([]map[string]string, 0, ds.NumColumns())
	for _, col := range ds.Columns {
		fields = append(fields, map[string]string{
			"Tag": fmt.Sprintf("name=%s, type=%s, repetitiontype=OPTIONAL",
				parquetFieldName(col.Name), parquetPhysicalType(col.Type)),
		})
	}
	schema := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": fields,
	}
	b, _ := json.Marshal(schema)
	return string(b)
}

func parquetPhysicalType(colType dataset.ColumnType) string {
	switch colType {
	case dataset.TypeNumeric:
		return "DOUBLE"
	case dataset.TypeBoolean:
		return "BOOLEAN"
	default:
		return "BYTE_ARRAY, convertedtype=UTF8"
	}
}

// parquetFieldName sanitizes a column name for the schema tag syntax, which
// cannot carry spaces or commas.
func parquetFieldName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

func parquetValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return v
}
