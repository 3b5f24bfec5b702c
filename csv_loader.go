package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// The loaded table is cached under (path, modtime, size) so every dashboard
// request reuses the parsed dataset; the cache invalidates when the file on
// disk changes or via InvalidateTableCache.
type tableCacheKey struct {
	path    string
	modTime int64
	size    int64
}

var tableCache = struct {
	sync.Mutex
	key    tableCacheKey
	table  *DataTable
	schema []ColumnInfo
}{}

// LoadTable reads the CSV at path into a DataTable plus its inferred schema.
// Compressed sources (.zip/.gz/.lz4) are unpacked to a temp file first.
// Missing or malformed files abort with an error, no retry and no partial load.
func LoadTable(path string) (*DataTable, []ColumnInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat csv source: %w", err)
	}
	key := tableCacheKey{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}

	tableCache.Lock()
	defer tableCache.Unlock()
	if tableCache.table != nil && tableCache.key == key {
		return tableCache.table, tableCache.schema, nil
	}

	table, err := parseCSVFile(path)
	if err != nil {
		return nil, nil, err
	}
	schema := InferSchema(table)

	tableCache.key = key
	tableCache.table = table
	tableCache.schema = schema
	return table, schema, nil
}

// InvalidateTableCache drops the cached table; the next load re-reads the file.
func InvalidateTableCache() {
	tableCache.Lock()
	defer tableCache.Unlock()
	tableCache.table = nil
	tableCache.schema = nil
}

func parseCSVFile(path string) (*DataTable, error) {
	if isArchivePath(path) {
		unpacked, err := unpackArchive(path)
		if err != nil {
			return nil, fmt.Errorf("unpack csv source: %w", err)
		}
		if unpacked != "" {
			defer os.Remove(unpacked)
			path = unpacked
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv source: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv source %s is empty", path)
	}

	analysis := AnalyzeHeaders(records[0])
	table := NewDataTable(analysis.Headers)
	dataStart := 1
	if analysis.FirstRowIsData {
		dataStart = 0
	}
	for _, record := range records[dataStart:] {
		if err := table.AddRow(record); err != nil {
			return nil, fmt.Errorf("csv source %s: %w", path, err)
		}
	}
	return table, nil
}
