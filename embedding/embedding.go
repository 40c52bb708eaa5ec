// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package embedding loads pretrained word vectors for use as an embedding table.
//
// This package wraps the internal loader and exports a clean public API for
// GloVe- and fastText-style text files.
//
// Example usage:
//
//	import "github.com/born-ml/wordvec/embedding"
//
//	emb, err := embedding.LoadGloVe("/data/embeddings",
//	    embedding.WithProgress(embedding.LogProgress(logger)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matrix, word2id, id2word := emb.Triple()
//	fmt.Println(matrix.Shape())          // [1917496 300]
//	fmt.Println(word2id[embedding.PadToken]) // 0
//	fmt.Println(id2word[embedding.UnkID])    // <unk>
package embedding

import (
	"io"

	"github.com/born-ml/wordvec/internal/log"
	"github.com/born-ml/wordvec/internal/tensor"
	"github.com/born-ml/wordvec/internal/vocab"
	"github.com/born-ml/wordvec/internal/wordvec"
)

// Reserved tokens and their fixed row indices.
const (
	PadToken    = vocab.PadToken
	UnkToken    = vocab.UnkToken
	PadID       = vocab.PadID
	UnkID       = vocab.UnkID
	NumReserved = vocab.NumReserved
)

// Element types for the embedding matrix.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Header modes for files that may start with a "count dim" line.
const (
	HeaderNone     = wordvec.HeaderNone
	HeaderAuto     = wordvec.HeaderAuto
	HeaderRequired = wordvec.HeaderRequired
)

// Errors returned by the loader. Use errors.Is to match them.
var (
	ErrInvalidSize       = wordvec.ErrInvalidSize
	ErrMalformedLine     = wordvec.ErrMalformedLine
	ErrVocabSizeMismatch = wordvec.ErrVocabSizeMismatch
	ErrInvalidHeader     = wordvec.ErrInvalidHeader
	ErrInvalidExport     = wordvec.ErrInvalidExport
)

// Built-in presets.
var (
	GloVe    = wordvec.GloVe
	FastText = wordvec.FastText
)

// Embeddings is a loaded embedding table together with its vocabulary.
type Embeddings = wordvec.Embeddings

// Vocabulary is the bidirectional token <-> row index mapping.
type Vocabulary = vocab.Vocabulary

// Matrix is the dense [rows, dim] embedding matrix.
type Matrix = tensor.RawTensor

// DataType selects the matrix element type.
type DataType = tensor.DataType

// NormSource draws from N(0, 1). *rand.Rand satisfies it.
type NormSource = tensor.NormSource

// Option configures a load.
type Option = wordvec.Option

// Preset names a well-known vector file and its sizes.
type Preset = wordvec.Preset

// HeaderMode controls how a leading "count dim" line is treated.
type HeaderMode = wordvec.HeaderMode

// Progress describes how far a scan has come.
type Progress = wordvec.Progress

// ProgressFunc receives progress updates during a scan.
type ProgressFunc = wordvec.ProgressFunc

// Neighbor is one result of a nearest-token query.
type Neighbor = wordvec.Neighbor

// Logger is the logging interface accepted by WithLogger.
type Logger = log.Logger

// Detailed error types.
type (
	ParseError        = wordvec.ParseError
	SizeMismatchError = wordvec.SizeMismatchError
	HeaderError       = wordvec.HeaderError
)

// Load reads vocabSize vectors of the given dimension from path.
//
// The result has vocabSize+2 rows; rows 0 and 1 are <pad> and <unk>.
func Load(path string, vocabSize, dimension int, opts ...Option) (*Embeddings, error) {
	return wordvec.Load(path, vocabSize, dimension, opts...)
}

// LoadReader is Load for an arbitrary stream.
func LoadReader(r io.Reader, vocabSize, dimension int, opts ...Option) (*Embeddings, error) {
	return wordvec.LoadReader(r, vocabSize, dimension, opts...)
}

// LoadGloVe loads glove.42B.300d.txt (1,917,494 x 300) from baseDir.
func LoadGloVe(baseDir string, opts ...Option) (*Embeddings, error) {
	return wordvec.LoadGloVe(baseDir, opts...)
}

// LoadFastText loads crawl-300d-2M.vec (2,000,000 x 300) from baseDir.
func LoadFastText(baseDir string, opts ...Option) (*Embeddings, error) {
	return wordvec.LoadFastText(baseDir, opts...)
}

// LoadPreset loads the file described by p from baseDir.
func LoadPreset(baseDir string, p Preset, opts ...Option) (*Embeddings, error) {
	return wordvec.LoadPreset(baseDir, p, opts...)
}

// LoadPresetsFile reads YAML preset definitions merged over the built-ins.
func LoadPresetsFile(path string) (map[string]Preset, error) {
	return wordvec.LoadPresetsFile(path)
}

// ParsePresets decodes YAML preset definitions merged over the built-ins.
func ParsePresets(r io.Reader) (map[string]Preset, error) {
	return wordvec.ParsePresets(r)
}

// Open reads a table written by Embeddings.Save.
func Open(path string) (*Embeddings, error) {
	return wordvec.Open(path)
}

// Decode reads a table written by Embeddings.Encode.
func Decode(r io.Reader) (*Embeddings, error) {
	return wordvec.Decode(r)
}

// WithDataType selects the matrix element type (Float64 by default).
func WithDataType(dtype DataType) Option {
	return wordvec.WithDataType(dtype)
}

// WithNormSource sets the generator for the reserved rows.
func WithNormSource(src NormSource) Option {
	return wordvec.WithNormSource(src)
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return wordvec.WithProgress(fn)
}

// WithProgressEvery sets the number of lines between progress callbacks.
func WithProgressEvery(n int) Option {
	return wordvec.WithProgressEvery(n)
}

// WithLogger sets the logger used during the load.
func WithLogger(l Logger) Option {
	return wordvec.WithLogger(l)
}

// WithHeader selects the header mode.
func WithHeader(mode HeaderMode) Option {
	return wordvec.WithHeader(mode)
}

// WithMaxLineBytes sets the longest accepted input line.
func WithMaxLineBytes(n int) Option {
	return wordvec.WithMaxLineBytes(n)
}

// LogProgress returns a ProgressFunc that reports through l.
func LogProgress(l Logger) ProgressFunc {
	return wordvec.LogProgress(l)
}

// NewLogger returns a logrus-backed logger writing to stderr at info level.
func NewLogger() Logger {
	return log.New()
}
