// Package export serializes assembled datasets to durable storage in several
// file formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang-synth-datagen/internal/generator/dataset"
	"golang-synth-datagen/pkg/logger"
)

// ErrUnsupportedFormat is returned for format names the exporter does not
// know. This is a caller error: it fails fast with no fallback format.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const csvDateLayout = "2006-01-02 15:04:05"

// Exporter writes datasets under a fixed output directory, created on
// demand. The caller owns returned paths; the exporter never tracks or
// garbage-collects prior artifacts.
type Exporter struct {
	outputDir string
	logger    *logger.Logger
}

// New creates an Exporter rooted at outputDir.
func New(outputDir string, log *logger.Logger) (*Exporter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Exporter{outputDir: outputDir, logger: log}, nil
}

// SupportedFormat reports whether format names a known export format.
// Matching is case-insensitive.
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "csv", "json", "xml", "parquet", "excel", "xlsx":
		return true
	default:
		return false
	}
}

// Export serializes the dataset as the given format and returns the file
// path. The row index is never written.
func (e *Exporter) Export(ds *dataset.Dataset, filename, format string) (string, error) {
	var (
		path string
		err  error
	)

	switch strings.ToLower(format) {
	case "csv":
		path, err = e.toCSV(ds, filename)
	case "json":
		path, err = e.toJSON(ds, filename)
	case "xml":
		path, err = e.toXML(ds, filename)
	case "parquet":
		path, err = e.toParquet(ds, filename)
	case "excel", "xlsx":
		path, err = e.toExcel(ds, filename)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return "", err
	}
	e.logger.Info("Exported dataset",
		logger.StringField("path", path),
		logger.IntField("rows", ds.NumRows()),
	)
	return path, nil
}

// ExportWithMetadata performs a normal export, then persists the metadata
// mapping as a sibling "<filename>_metadata.json" file. The two writes are
// not transactional.
func (e *Exporter) ExportWithMetadata(ds *dataset.Dataset, filename, format string, metadata map[string]any) (string, error) {
	path, err := e.Export(ds, filename, format)
	if err != nil {
		return "", err
	}

	metadataPath := filepath.Join(e.outputDir, filename+"_metadata.json")
	payload, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(metadataPath, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}

	e.logger.Info("Exported metadata", logger.StringField("path", metadataPath))
	return path, nil
}

func (e *Exporter) toCSV(ds *dataset.Dataset, filename string) (string, error) {
	path := filepath.Join(e.outputDir, filename+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.ColumnNames()); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = cellString(v)
		}
		if err := w.Write(cells); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return path, nil
}

// toJSON writes a row-oriented record list with ISO-8601 date formatting.
func (e *Exporter) toJSON(ds *dataset.Dataset, filename string) (string, error) {
	path := filepath.Join(e.outputDir, filename+".json")

	rows := make([]map[string]any, ds.NumRows())
	names := ds.ColumnNames()
	for i := 0; i < ds.NumRows(); i++ {
		row := make(map[string]any, len(names))
		for c, v := range ds.Row(i) {
			row[names[c]] = jsonValue(v)
		}
		rows[i] = row
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal json export: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write json file: %w", err)
	}
	return path, nil
}

func (e *Exporter) toXML(ds *dataset.Dataset, filename string) (string, error) {
	path := filepath.Join(e.outputDir, filename+".xml")

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString("<data>\n")
	names := ds.ColumnNames()
	for i := 0; i < ds.NumRows(); i++ {
		sb.WriteString("  <record>\n")
		for c, v := range ds.Row(i) {
			tag := xmlElementName(names[c])
			sb.WriteString("    <")
			sb.WriteString(tag)
			sb.WriteString(">")
			sb.WriteString(xmlEscape(cellString(v)))
			sb.WriteString("</")
			sb.WriteString(tag)
			sb.WriteString(">\n")
		}
		sb.WriteString("  </record>\n")
	}
	sb.WriteString("</data>\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write xml file: %w", err)
	}
	return path, nil
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(csvDateLayout)
	default:
		return fmt.Sprint(val)
	}
}

func jsonValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return v
}

// xmlElementName maps a column name to a valid XML element name.
func xmlElementName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	s := sb.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "_" + s
	}
	return s
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
