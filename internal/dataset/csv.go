package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV loads a dataset from CSV. The first record is the header and
// defines the column order; every field is parsed to its intrinsic cell
// kind via ParseCell, with empty fields becoming Missing.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		return New(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(Row, len(headers))
		for i, value := range record {
			if i < len(headers) {
				row[headers[i]] = ParseCell(value)
			}
		}
		rows = append(rows, row)
	}

	return New(headers, rows), nil
}

// ReadCSVFile loads a dataset from a CSV file on disk.
func ReadCSVFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}
