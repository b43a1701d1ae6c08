// Package matrix provides the dense float32 matrix used by the glassocr
// inference pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c container with bounds-checked At/Set that return
//     ErrOutOfRange instead of panicking.
//   - Kernels that always allocate a fresh result: Add, Mul, Scale,
//     AddScalar, ReLU, Apply, Flatten, plus ArgMax.
//   - Text I/O for flat numeric weight files (Load/Decode, Save/Encode).
//   - SetZero and SetRandom (standard normal) in-place initialisers.
//
// Shape problems surface as ErrDimensionMismatch; match every sentinel with
// errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
