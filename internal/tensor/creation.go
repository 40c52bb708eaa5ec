package tensor

import (
	"fmt"
	"math/rand"
)

// NormSource draws values from the standard normal distribution N(0, 1).
//
// *rand.Rand satisfies NormSource, so callers can pass a seeded generator
// for reproducible initialization.
type NormSource interface {
	NormFloat64() float64
}

type globalNorm struct{}

// NormFloat64 draws from the shared math/rand source.
func (globalNorm) NormFloat64() float64 {
	return rand.NormFloat64() //nolint:gosec // G404: ML uses math/rand intentionally
}

// DefaultNormSource returns a NormSource backed by the math/rand global generator.
func DefaultNormSource() NormSource {
	return globalNorm{}
}

// Zeros creates a zero-filled tensor.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4}, tensor.Float32)
func Zeros(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return raw
}

// RandnRows fills rows [start, end) of a 2D tensor with independent draws from N(0, 1).
//
// Values are drawn in row-major order, one draw per element.
func RandnRows(r *RawTensor, start, end int, src NormSource) {
	if len(r.shape) != 2 {
		panic(fmt.Sprintf("RandnRows requires a 2D tensor, got shape %v", r.shape))
	}
	if start < 0 || end > r.shape[0] || start > end {
		panic(fmt.Sprintf("row range [%d, %d) out of bounds for %d rows", start, end, r.shape[0]))
	}
	if src == nil {
		src = DefaultNormSource()
	}

	cols := r.shape[1]
	switch r.dtype {
	case Float32:
		data := r.AsFloat32()[start*cols : end*cols]
		for i := range data {
			data[i] = float32(src.NormFloat64())
		}
	case Float64:
		data := r.AsFloat64()[start*cols : end*cols]
		for i := range data {
			data[i] = src.NormFloat64()
		}
	}
}
