package knn

import "math"

// Classify runs a k-nearest-neighbor search of query against every row of
// the dataset and returns the majority-vote label plus the mean distance of
// the K kept neighbors.
//
// The K smallest (distance, label) pairs are kept in a sorted list filled by
// reverse-scan insertion. A candidate is only inserted when it is strictly
// closer than the current K-th neighbor; a candidate that exactly ties the
// boundary is discarded, so earlier dataset rows win ties. Vote ties resolve
// to the first class index that reaches the maximum count. Both rules are
// load-bearing for reproducibility against the trained datasets.
//
// len(query) must equal d.D.
func Classify(d *Dataset, query []float64) (label int, meanDist float64) {
	nearestDist := make([]float64, d.K)
	nearestLabel := make([]uint8, d.K)
	for i := range nearestDist {
		nearestDist[i] = math.Inf(1)
	}

	for i := 0; i < d.N; i++ {
		row := d.Row(i)

		sum := 0.0
		for j := 0; j < d.D; j++ {
			diff := query[j] - row[j]
			sum += diff * diff
		}
		dist := math.Sqrt(sum)

		if dist >= nearestDist[d.K-1] {
			continue
		}

		pos := d.K - 1
		for pos > 0 && dist < nearestDist[pos-1] {
			pos--
		}
		for j := d.K - 1; j > pos; j-- {
			nearestDist[j] = nearestDist[j-1]
			nearestLabel[j] = nearestLabel[j-1]
		}
		nearestDist[pos] = dist
		nearestLabel[pos] = d.Labels[i]
	}

	votes := make([]int, d.Classes)
	for _, lb := range nearestLabel {
		votes[lb]++
	}

	best := 0
	maxVotes := 0
	for c := 0; c < d.Classes; c++ {
		if votes[c] > maxVotes {
			maxVotes = votes[c]
			best = c
		}
	}

	sum := 0.0
	for _, dist := range nearestDist {
		sum += dist
	}

	return best, sum / float64(d.K)
}

// Confidence maps a mean neighbor distance to a display score in (0, 1].
// It is monotonically decreasing in the distance and is exactly 1 for a
// zero-distance match; it is a quality indicator, not a probability.
func Confidence(meanDist float64) float64 {
	return 1.0 / (1.0 + meanDist)
}
