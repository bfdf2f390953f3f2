package sax

// PAA reduces values to w per-segment arithmetic means (Piecewise
// Aggregate Approximation). Segment sizes are as equal as integer
// division allows; when len(values) is not divisible by w the earlier
// segments take the extra samples. w == len(values) is the identity.
func PAA(values []float64, w int) ([]float64, error) {
	n := len(values)
	if w < 1 || w > n {
		return nil, &ErrInvalidWordSize{WordSize: w, WindowLen: n}
	}

	out := make([]float64, w)
	base, extra := n/w, n%w

	idx := 0
	for s := range out {
		size := base
		if s < extra {
			size++
		}

		var sum float64
		for _, v := range values[idx : idx+size] {
			sum += v
		}
		out[s] = sum / float64(size)
		idx += size
	}
	return out, nil
}
