package data

// Schema fixes the partition of input columns into target, ignored,
// categorical, boolean, numeric and group fields. It is static
// configuration: the partition never changes at runtime, and the artifact's
// feature ordering is derived from it.
type Schema struct {
	Target   string
	Noop     []string
	Category string
	Boolean  []string
	Numeric  []string
	Group    string
}

// DefaultSchema describes the gifsicle profiling CSV layout.
func DefaultSchema() Schema {
	return Schema{
		Target:   "elapsed_seconds",
		Noop:     []string{"width", "height", "output_size_bytes"},
		Category: "drop_frames",
		Boolean: []string{
			"reduce_colors",
			"optimize_transparency",
			"undo_optimizations",
		},
		Numeric: []string{
			"total_pixels",
			"frames",
			"file_size_bytes",
			"target_width",
			"target_height",
			"number_of_colors",
			"compression_level",
		},
		Group: "filename",
	}
}

// FeatureColumns returns the numeric feature names in the order the model
// consumes them: numeric fields first, then the booleans coerced to 0/1.
func (s Schema) FeatureColumns() []string {
	cols := make([]string, 0, len(s.Numeric)+len(s.Boolean))
	cols = append(cols, s.Numeric...)
	cols = append(cols, s.Boolean...)
	return cols
}

// required lists every column that must be present in the input header,
// including the noop fields that are read and then dropped.
func (s Schema) required() []string {
	cols := []string{s.Target, s.Category, s.Group}
	cols = append(cols, s.Noop...)
	cols = append(cols, s.Boolean...)
	cols = append(cols, s.Numeric...)
	return cols
}
