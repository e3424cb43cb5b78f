package data

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{
	"elapsed_seconds", "width", "height", "output_size_bytes",
	"drop_frames", "reduce_colors", "optimize_transparency", "undo_optimizations",
	"total_pixels", "frames", "file_size_bytes", "target_width", "target_height",
	"number_of_colors", "compression_level", "filename",
}

func row(over map[string]string) string {
	def := map[string]string{
		"elapsed_seconds": "1.5", "width": "320", "height": "240",
		"output_size_bytes": "1024", "drop_frames": "none",
		"reduce_colors": "false", "optimize_transparency": "false",
		"undo_optimizations": "false", "total_pixels": "76800", "frames": "10",
		"file_size_bytes": "2048", "target_width": "160", "target_height": "120",
		"number_of_colors": "256", "compression_level": "2", "filename": "a.gif",
	}
	for k, v := range over {
		def[k] = v
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = def[h]
	}
	return strings.Join(cols, ",")
}

func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.csv")
	lines := append([]string{strings.Join(header, ",")}, rows...)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFiltersFailedRuns(t *testing.T) {
	path := writeCSV(t,
		row(map[string]string{"elapsed_seconds": "2.0"}),
		row(map[string]string{"elapsed_seconds": "0"}),
		row(map[string]string{"elapsed_seconds": "-1.5"}),
		row(map[string]string{"elapsed_seconds": "not-a-number"}),
		row(map[string]string{"elapsed_seconds": "0.001"}),
	)

	table, err := Load(path, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	for _, y := range table.Y {
		assert.Greater(t, y, 0.0)
	}
}

func TestLoadDropsNoopColumns(t *testing.T) {
	path := writeCSV(t, row(nil))

	table, err := Load(path, quietLogger())
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	// Only the numeric and boolean columns survive, in schema order.
	want := table.Schema.FeatureColumns()
	assert.Len(t, table.X[0], len(want))
	assert.Equal(t, []float64{76800, 10, 2048, 160, 120, 256, 2, 0, 0, 0}, table.X[0])
	assert.Equal(t, []string{"none"}, table.Category)
	assert.Equal(t, []string{"a.gif"}, table.Groups)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	bad := strings.Join(header[:len(header)-1], ",") // drop filename
	require.NoError(t, os.WriteFile(path, []byte(bad+"\n"), 0o644))

	_, err := Load(path, quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "filename")
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"true", 1},
		{"True", 1},
		{"false", 0},
		{"False", 0},
		{"", 0},
		{"TRUE", 0},
		{"yes", 0},
		{"1", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceBool(tt.in))
		})
	}
}

func TestLoadCoercesBooleans(t *testing.T) {
	path := writeCSV(t,
		row(map[string]string{"reduce_colors": "true", "optimize_transparency": "maybe"}),
	)

	table, err := Load(path, quietLogger())
	require.NoError(t, err)

	n := len(table.Schema.Numeric)
	assert.Equal(t, 1.0, table.X[0][n])   // reduce_colors
	assert.Equal(t, 0.0, table.X[0][n+1]) // optimize_transparency fell back to 0
	assert.Equal(t, 0.0, table.X[0][n+2]) // undo_optimizations
}
