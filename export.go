package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ExportFileName is the download name of the filtered dataset.
const ExportFileName = "filtered_car_sales.csv"

// ExportCSV serializes the view to CSV bytes: UTF-8, comma-delimited, header
// row first, no index column. Generated fresh per call so the artifact always
// reflects the current filter state.
func ExportCSV(view View) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(view.Table.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := 0; i < view.Len(); i++ {
		if err := writer.Write(view.Row(i)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
