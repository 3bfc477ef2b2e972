package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords_PlainArray(t *testing.T) {
	records, err := ParseRecords(`[{"ticker":"AAPL","close":191.2},{"ticker":"MSFT","close":410.5}]`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AAPL", records[0]["ticker"])
	assert.Equal(t, 410.5, records[1]["close"])
}

func TestParseRecords_JSONCodeFence(t *testing.T) {
	text := "Here is your data:\n```json\n[{\"a\": 1}]\n```\nLet me know if you need more."
	records, err := ParseRecords(text)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1.0, records[0]["a"])
}

func TestParseRecords_BareCodeFence(t *testing.T) {
	text := "```\n[{\"a\": 1}, {\"a\": 2}]\n```"
	records, err := ParseRecords(text)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseRecords_BareObjectBecomesSingleRecord(t *testing.T) {
	records, err := ParseRecords(`{"ticker":"AAPL"}`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AAPL", records[0]["ticker"])
}

func TestParseRecords_InvalidJSON(t *testing.T) {
	_, err := ParseRecords("I could not generate the data, sorry.")
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestParseRecords_ArrayOfNonObjects(t *testing.T) {
	_, err := ParseRecords(`[1, 2, 3]`)
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestParseRecords_ScalarPayload(t *testing.T) {
	_, err := ParseRecords(`"just a string"`)
	require.ErrorIs(t, err, ErrInvalidPayload)
}
