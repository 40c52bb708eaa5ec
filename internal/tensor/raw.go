package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is a dense row-major buffer with runtime type information.
//
// Embedding tables are stored as a 2D RawTensor of shape [rows, dim].
// Memory is allocated once and never resized.
type RawTensor struct {
	data   []byte   // Backing storage
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("unsupported data type: %d", int(dtype))
	}

	numElements := shape.NumElements()

	return &RawTensor{
		data:   make([]byte, numElements*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Rows returns the size of the first dimension of a 2D tensor.
func (r *RawTensor) Rows() int {
	return r.shape[0]
}

// Cols returns the size of the last dimension.
func (r *RawTensor) Cols() int {
	return r.shape[len(r.shape)-1]
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// RowFloat64 returns a float64 copy of row i of a 2D tensor.
func (r *RawTensor) RowFloat64(i int) []float64 {
	if len(r.shape) != 2 {
		panic(fmt.Sprintf("RowFloat64 requires a 2D tensor, got shape %v", r.shape))
	}
	if i < 0 || i >= r.shape[0] {
		panic(fmt.Sprintf("row %d out of range [0, %d)", i, r.shape[0]))
	}

	cols := r.shape[1]
	out := make([]float64, cols)
	switch r.dtype {
	case Float32:
		src := r.AsFloat32()[i*cols : (i+1)*cols]
		for j, v := range src {
			out[j] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64()[i*cols:(i+1)*cols])
	}
	return out
}

// SetRowFloat64 writes values into row i of a 2D tensor, converting to the tensor's dtype.
func (r *RawTensor) SetRowFloat64(i int, values []float64) {
	cols := r.Cols()
	if len(values) != cols {
		panic(fmt.Sprintf("row has %d values, tensor has %d columns", len(values), cols))
	}

	switch r.dtype {
	case Float32:
		dst := r.AsFloat32()[i*cols : (i+1)*cols]
		for j, v := range values {
			dst[j] = float32(v)
		}
	case Float64:
		copy(r.AsFloat64()[i*cols:(i+1)*cols], values)
	}
}
