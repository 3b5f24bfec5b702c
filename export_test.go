package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVRoundTrip(t *testing.T) {
	table, _ := carsTable()
	honda := ApplyFilter(table, "manufacturer", "Honda")

	data, err := ExportCSV(honda)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header plus exactly the filtered rows, no index column.
	require.Len(t, records, honda.Len()+1)
	assert.Equal(t, table.Headers, records[0])
	for i := 1; i < len(records); i++ {
		assert.Equal(t, honda.Row(i-1), records[i])
	}
}

func TestExportCSVUnfiltered(t *testing.T) {
	table, _ := carsTable()
	data, err := ExportCSV(FullView(table))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, table.NumRows()+1)
}

func TestExportCSVEmptyFilterResult(t *testing.T) {
	table, _ := carsTable()
	empty := ApplyFilter(table, "manufacturer", "Tesla")

	data, err := ExportCSV(empty)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Header only.
	require.Len(t, records, 1)
	assert.Equal(t, table.Headers, records[0])
}
