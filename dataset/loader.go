package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/statfit/statfit/pkg/errors"
)

// LoadCSV reads a delimited numeric table into a Dataset. Every field
// must parse as a float64; the last column is taken as the target.
// When skipHeader is true the first record is discarded.
func LoadCSV(r io.Reader, skipHeader bool) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadCSV")
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.LoadCSV")
	}

	ds := make(Dataset, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset.LoadCSV: row %d column %d", i, j)
			}
			row[j] = v
		}
		ds = append(ds, row)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadCSVFile opens path and loads it via LoadCSV.
func LoadCSVFile(path string, skipHeader bool) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadCSVFile")
	}
	defer f.Close()
	return LoadCSV(f, skipHeader)
}
