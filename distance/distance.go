package distance

import "math"

// ZNormalizeInto writes the z-normalized values of src into dst.
// dst and src must have the same length (caller's responsibility);
// they may alias. A window with numerically zero variance normalizes
// to all zeros (see the package documentation).
func ZNormalizeInto(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	mean, std := meanStd(src)
	if std == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	inv := 1 / std
	for i, v := range src {
		dst[i] = (v - mean) * inv
	}
}

// ZNormalize returns a z-normalized copy of src.
func ZNormalize(src []float64) []float64 {
	dst := make([]float64, len(src))
	ZNormalizeInto(dst, src)
	return dst
}

// meanStd returns the sample mean and population standard deviation.
func meanStd(values []float64) (float64, float64) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

// Euclidean returns the Euclidean (L2) distance between a and b.
// Assumes both slices have the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// EuclideanEarlyAbandon computes the Euclidean distance between a and b,
// abandoning the accumulation as soon as the partial sum guarantees the
// final distance is at least cutoff. The second return value reports
// whether the distance was computed exactly; when it is false the true
// distance is >= cutoff and the first return value is only a lower bound.
//
// A +Inf cutoff never abandons and is equivalent to Euclidean.
func EuclideanEarlyAbandon(a, b []float64, cutoff float64) (float64, bool) {
	limit := cutoff * cutoff
	if math.IsInf(cutoff, 1) {
		limit = math.Inf(1)
	}

	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
		if sum >= limit {
			return math.Sqrt(sum), false
		}
	}
	return math.Sqrt(sum), true
}
