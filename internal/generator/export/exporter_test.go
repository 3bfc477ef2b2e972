package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang-synth-datagen/internal/entity"
	"golang-synth-datagen/internal/generator/dataset"
	"golang-synth-datagen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testDataset() *dataset.Dataset {
	return dataset.FromRecords([]entity.Record{
		{"ticker": "AAPL", "close": 191.25, "trade_date": "2024-03-01", "active": true},
		{"ticker": "MSFT", "close": 410.5, "trade_date": "2024-03-04", "active": false},
	})
}

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	e, err := New(t.TempDir(), logger.NewNop())
	require.NoError(t, err)
	return e
}

func TestSupportedFormat(t *testing.T) {
	assert.True(t, SupportedFormat("csv"))
	assert.True(t, SupportedFormat("CSV"))
	assert.True(t, SupportedFormat("Parquet"))
	assert.True(t, SupportedFormat("xlsx"))
	assert.False(t, SupportedFormat("yaml"))
	assert.False(t, SupportedFormat(""))
}

func TestExport_UnsupportedFormat(t *testing.T) {
	e := newTestExporter(t)
	_, err := e.Export(testDataset(), "out", "yaml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_CSV(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.Export(testDataset(), "out", "csv")
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, testDataset().ColumnNames(), rows[0])
	assert.Contains(t, rows[1], "AAPL")
	assert.Contains(t, rows[1], "191.25")
	assert.Contains(t, rows[1], "2024-03-01 00:00:00")
}

func TestExport_JSONRoundTrip(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.Export(testDataset(), "out", "json")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "AAPL", rows[0]["ticker"])
	assert.Equal(t, 191.25, rows[0]["close"])
	assert.Equal(t, true, rows[0]["active"])
	assert.Equal(t, "2024-03-01T00:00:00Z", rows[0]["trade_date"])
}

func TestExport_XML(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.Export(testDataset(), "out", "xml")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "<data>")
	assert.Contains(t, content, "<record>")
	assert.Contains(t, content, "<ticker>AAPL</ticker>")
}

func TestExport_Parquet(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.Export(testDataset(), "out", "parquet")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, ".parquet", filepath.Ext(path))
}

func TestExport_ExcelWithDataDictionary(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.Export(testDataset(), "out", "excel")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Data")
	assert.Contains(t, f.GetSheetList(), "Data Dictionary")

	cell, err := f.GetCellValue("Data Dictionary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Column Name", cell)
}

func TestExportWithMetadata_WritesSiblingFile(t *testing.T) {
	e := newTestExporter(t)
	path, err := e.ExportWithMetadata(testDataset(), "out", "csv", map[string]any{
		"domain":    "Capital Markets",
		"generated": 2,
	})
	require.NoError(t, err)

	metadataPath := filepath.Join(filepath.Dir(path), "out_metadata.json")
	raw, err := os.ReadFile(metadataPath)
	require.NoError(t, err)

	var meta map[string]any
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "Capital Markets", meta["domain"])
	assert.Equal(t, 2.0, meta["generated"])
}
