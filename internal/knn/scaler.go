package knn

// Scaler holds the per-feature standardization parameters the offline
// trainer fitted on the training set. Queries must pass through the same
// transform before being compared against a standardized dataset.
type Scaler struct {
	Mean  []float64
	Scale []float64
}

// Standardize applies (x - mean) / scale to each feature in place.
// len(x) must equal len(s.Mean).
func (s *Scaler) Standardize(x []float64) {
	for i := range x {
		x[i] = (x[i] - s.Mean[i]) / s.Scale[i]
	}
}
