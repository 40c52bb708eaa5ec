// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/wordvec/internal/tensor"
)

// RawTensor is the dense row-major matrix representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Rows(), Cols()
//   - Zero-copy data access via AsFloat32(), AsFloat64()
//   - Row copies via RowFloat64()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()  // Type-safe access
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType represents the runtime element type.
type DataType = tensor.DataType

// NormSource draws values from N(0, 1).
type NormSource = tensor.NormSource

// Supported element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// RandnRows fills rows [start, end) of a 2D tensor from src.
func RandnRows(r *RawTensor, start, end int, src NormSource) {
	tensor.RandnRows(r, start, end, src)
}
