package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// ErrMissingColumn reports a required column absent from the input header.
var ErrMissingColumn = errors.New("missing column")

// Table holds the filtered training data in memory for one run.
// X carries the numeric and coerced boolean columns in Schema order;
// Category, Groups and Y are aligned row-wise with X.
type Table struct {
	Schema   Schema
	X        [][]float64
	Category []string
	Groups   []string
	Y        []float64
}

// Len returns the number of retained samples.
func (t *Table) Len() int { return len(t.Y) }

// Load reads the training CSV at path into a Table. Rows whose target is
// not strictly positive are failed runs and are discarded; the noop columns
// are validated against the header but never read into the table.
func Load(path string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open training file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read training file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read training file %s: empty file", path)
	}

	schema := DefaultSchema()
	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	for _, name := range schema.required() {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	featureCols := schema.FeatureColumns()
	t := &Table{Schema: schema}
	for line, rec := range records[1:] {
		y, err := strconv.ParseFloat(rec[idx[schema.Target]], 64)
		if err != nil || y <= 0 {
			// Failed or unparseable run.
			continue
		}
		row := make([]float64, len(featureCols))
		valid := true
		for j, name := range schema.Numeric {
			v, err := strconv.ParseFloat(rec[idx[name]], 64)
			if err != nil {
				logger.Debug("skipping malformed row",
					slog.Int("line", line+2), slog.String("column", name))
				valid = false
				break
			}
			row[j] = v
		}
		if !valid {
			continue
		}
		for j, name := range schema.Boolean {
			row[len(schema.Numeric)+j] = CoerceBool(rec[idx[name]])
		}
		t.X = append(t.X, row)
		t.Category = append(t.Category, rec[idx[schema.Category]])
		t.Groups = append(t.Groups, rec[idx[schema.Group]])
		t.Y = append(t.Y, y)
	}

	logger.Info("loaded successful samples", slog.Int("samples", t.Len()))
	return t, nil
}

// CoerceBool maps a raw boolean cell to 0 or 1. The mapping is total:
// "true"/"True" map to 1, "false"/"False" map to 0, and every other value,
// empty cells included, falls back to 0. The silent fallback matches the
// historical extractor and can mask data-quality problems; the loader tests
// pin it down.
func CoerceBool(s string) float64 {
	switch s {
	case "true", "True":
		return 1
	case "false", "False":
		return 0
	}
	return 0
}
