// Package tensor provides the dense matrix storage used for embedding tables.
package tensor

// DataType represents runtime element type information for tensors.
type DataType int

// Supported element types for embedding tables.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// BitSize returns the precision used when parsing decimal text into this type.
func (dt DataType) BitSize() int {
	return dt.Size() * 8
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is a supported element type.
func (dt DataType) Valid() bool {
	return dt == Float32 || dt == Float64
}
