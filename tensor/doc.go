// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the dense matrix type that holds embedding tables.
//
// # Overview
//
// A loaded table is a 2D RawTensor of shape [rows, dim] in row-major order.
// Row i is the vector of the token with index i. Elements are float32 by
// default; float64 tables can be requested at load time.
//
// # Basic Usage
//
//	emb, err := embedding.Load("vectors.txt", 400000, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := emb.Matrix()
//	data := m.AsFloat32()          // zero-copy view
//	row := data[7*m.Cols() : 8*m.Cols()]
package tensor
