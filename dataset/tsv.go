package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// FromTSV reads a tab-separated file with a header row into a Dataset. Records must be
// rectangular - a record with more or fewer fields than the header is an error.
func FromTSV(f io.Reader) (*Dataset, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	header := records[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("TSV file missing header")
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		cells := make([]string, len(records)-1)
		for j, record := range records[1:] {
			cells[j] = record[i]
		}

		columns[i] = Column{
			Name:  name,
			Cells: cells,
		}
	}

	return New(columns...)
}
