package knn

// Dataset is an immutable labeled reference table produced by the offline
// training tools and compiled into the binary. Rows are stored row-major in
// one flat slice; the table is only ever read through Row and is never
// copied or mutated after build time.
type Dataset struct {
	Name string // "gesture" or "sentence", for logging

	N       int // reference rows
	D       int // features per row
	K       int // neighbors consulted per query
	Classes int // number of known labels

	Data   []float64 // N*D values, row-major
	Labels []uint8   // N class indices

	LabelNames []string // Classes display names
}

// Row returns reference row i without copying.
func (d *Dataset) Row(i int) []float64 {
	return d.Data[i*d.D : (i+1)*d.D]
}

// LabelName returns the display name for a class index, or "unknown" for
// anything out of range so a bad index can never be used to index the table.
func (d *Dataset) LabelName(idx int) string {
	if idx < 0 || idx >= len(d.LabelNames) {
		return "unknown"
	}
	return d.LabelNames[idx]
}
