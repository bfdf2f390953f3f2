// Package distance provides the numeric kernels for subsequence comparison.
//
// Two concerns live here:
//
//   - z-normalization of windows (zero mean, unit variance), the
//     preprocessing step applied before every distance comparison
//   - Euclidean distance, including an early-abandoning variant that
//     stops accumulating once the partial sum proves the final value
//     cannot fall below a caller-supplied cutoff
//
// # Usage
//
//	zn := distance.ZNormalize(window)
//	d := distance.Euclidean(a, b)
//	d, ok := distance.EuclideanEarlyAbandon(a, b, cutoff)
//
// # Zero-variance convention
//
// A constant window has no shape signal. Its z-normalized form is defined
// as all zeros rather than an error, so two constant windows compare at
// distance zero. Callers relying on variance must check it themselves.
package distance
