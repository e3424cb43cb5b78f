package dataprep

// OneHotEncoder expands a single categorical field into indicator columns,
// one per category observed at fit time, in first-appearance order.
type OneHotEncoder struct {
	Field      string
	Categories []string
	index      map[string]int
}

// NewOneHotEncoder creates an encoder for the named categorical field.
func NewOneHotEncoder(field string) *OneHotEncoder {
	return &OneHotEncoder{Field: field, index: map[string]int{}}
}

// Fit enumerates the distinct values in the order they first appear.
func (e *OneHotEncoder) Fit(values []string) {
	e.Categories = e.Categories[:0]
	e.index = make(map[string]int, 4)
	for _, v := range values {
		if _, ok := e.index[v]; !ok {
			e.index[v] = len(e.Categories)
			e.Categories = append(e.Categories, v)
		}
	}
}

// Transform one-hot encodes values. A value never seen at fit time yields
// an all-zero row rather than an error, so the frozen model degrades to its
// intercept contribution on unknown categories.
func (e *OneHotEncoder) Transform(values []string) [][]float64 {
	out := make([][]float64, len(values))
	for i, v := range values {
		vec := make([]float64, len(e.Categories))
		if j, ok := e.index[v]; ok {
			vec[j] = 1
		}
		out[i] = vec
	}
	return out
}

// FeatureNames returns the indicator column names in encoding order.
func (e *OneHotEncoder) FeatureNames() []string {
	names := make([]string, len(e.Categories))
	for i, c := range e.Categories {
		names[i] = OneHotColumn(e.Field, c)
	}
	return names
}

// OneHotColumn names the indicator column for one category of a field.
func OneHotColumn(field, value string) string {
	return field + "_" + value
}
