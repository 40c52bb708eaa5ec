// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/wordvec/tensor"
)

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	// Test Shape() method.
	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", shape)
	}

	// Test DType() method.
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}

	// Test zero-copy access.
	data := raw.AsFloat32()
	data[4] = 1.5
	if got := raw.RowFloat64(1)[1]; got != 1.5 {
		t.Errorf("RowFloat64(1)[1] = %v, want 1.5", got)
	}
}

func TestRandnRows(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{3, 4}, tensor.Float64)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	tensor.RandnRows(raw, 0, 1, rand.New(rand.NewSource(3)))

	nonZero := 0
	for _, v := range raw.RowFloat64(0) {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("row 0 was not filled")
	}
	for _, v := range raw.RowFloat64(2) {
		if v != 0 {
			t.Errorf("row 2 should stay zero, got %v", v)
		}
	}
}
