package wordvec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/born-ml/wordvec/internal/tensor"
	"github.com/born-ml/wordvec/internal/vocab"
)

// Load reads vocabSize word vectors of the given dimension from the file at path.
//
// The returned matrix has vocabSize+2 rows. Rows 0 and 1 hold the reserved
// <pad> and <unk> tokens; row i >= 2 holds the (i-1)-th line of the file.
//
// Example:
//
//	emb, err := wordvec.Load("glove.6B.50d.txt", 400000, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(emb.Matrix().Shape()) // [400002 50]
func Load(path string, vocabSize, dimension int, opts ...Option) (*Embeddings, error) {
	cfg := newConfig(opts)

	//nolint:gosec // G304: File path comes from user input, which is expected for vector loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word vectors: %w", err)
	}
	defer func() {
		_ = file.Close() // Read-only, nothing to flush
	}()

	cfg.logger.Info("Loading vectors from file: %s (vocab %d, dim %d, %s)", path, vocabSize, dimension, cfg.dtype)

	emb, err := load(file, vocabSize, dimension, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.logger.Info("Loaded %d rows from %s (%d shadowed duplicates, %d bytes)",
		emb.Len(), path, emb.vocab.Shadowed(), emb.matrix.ByteSize())
	return emb, nil
}

// LoadReader is Load for an arbitrary stream.
func LoadReader(r io.Reader, vocabSize, dimension int, opts ...Option) (*Embeddings, error) {
	return load(r, vocabSize, dimension, newConfig(opts))
}

func load(r io.Reader, vocabSize, dimension int, cfg *config) (*Embeddings, error) {
	if vocabSize < 0 || dimension <= 0 {
		return nil, fmt.Errorf("%w: vocabSize=%d dimension=%d", ErrInvalidSize, vocabSize, dimension)
	}

	rows := vocabSize + vocab.NumReserved
	matrix, err := tensor.NewRaw(tensor.Shape{rows, dimension}, cfg.dtype)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate embedding matrix: %w", err)
	}

	// Reserved rows start random, everything else is overwritten by the scan.
	tensor.RandnRows(matrix, 0, vocab.NumReserved, cfg.norm)
	voc := vocab.New(rows)
	w := newRowWriter(matrix)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, cfg.maxLineBytes)), cfg.maxLineBytes)

	lineNo, lines := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)

		if lineNo == 1 && cfg.header != HeaderNone {
			isHeader, err := checkHeader(line, vocabSize, dimension, cfg.header)
			if err != nil {
				return nil, err
			}
			if isHeader {
				continue
			}
		}

		fields := strings.Split(line, " ")
		if len(fields) != dimension+1 {
			return nil, &ParseError{
				Line:  lineNo,
				Field: -1,
				Token: fields[0],
				Err:   fmt.Errorf("expected %d fields, got %d", dimension+1, len(fields)),
			}
		}

		idx := vocab.NumReserved + lines
		if err := w.writeRow(idx, fields[1:]); err != nil {
			err.Line = lineNo
			err.Token = fields[0]
			return nil, err
		}
		// Lines past the declared size are still validated, then reported below.
		if idx < rows {
			voc.Add(fields[0])
		}

		lines++
		if cfg.progress != nil && lines%cfg.every == 0 {
			cfg.progress(Progress{Lines: lines, Total: vocabSize})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word vectors after line %d: %w", lineNo, err)
	}
	if lineNo == 0 && cfg.header == HeaderRequired {
		return nil, &HeaderError{Details: "empty input"}
	}
	if cfg.progress != nil {
		cfg.progress(Progress{Lines: lines, Total: vocabSize, Done: true})
	}

	if err := checkCounts(voc, vocabSize, lines); err != nil {
		return nil, err
	}

	return &Embeddings{matrix: matrix, vocab: voc}, nil
}

// checkCounts verifies that the matrix and both mappings agree with the declared size.
func checkCounts(voc *vocab.Vocabulary, vocabSize, lines int) error {
	final := vocabSize + vocab.NumReserved
	assigned := vocab.NumReserved + lines
	tokens := voc.Distinct() + voc.Shadowed()

	if voc.Len() != final || assigned != final || tokens != final {
		return &SizeMismatchError{
			Declared: vocabSize,
			Lines:    lines,
			Indices:  voc.Len(),
			Tokens:   tokens,
		}
	}
	return nil
}

// rowWriter parses decimal fields straight into the matrix backing store.
type rowWriter struct {
	dtype tensor.DataType
	bits  int
	rows  int
	cols  int
	f32   []float32
	f64   []float64
}

func newRowWriter(m *tensor.RawTensor) *rowWriter {
	w := &rowWriter{
		dtype: m.DType(),
		bits:  m.DType().BitSize(),
		rows:  m.Rows(),
		cols:  m.Cols(),
	}
	switch w.dtype {
	case tensor.Float32:
		w.f32 = m.AsFloat32()
	case tensor.Float64:
		w.f64 = m.AsFloat64()
	}
	return w
}

// writeRow parses fields into row idx. Rows past the matrix are parsed but not stored.
func (w *rowWriter) writeRow(idx int, fields []string) *ParseError {
	store := idx < w.rows
	off := idx * w.cols

	for j, field := range fields {
		v, err := strconv.ParseFloat(field, w.bits)
		if err != nil {
			return &ParseError{Field: j + 1, Err: err}
		}
		if !store {
			continue
		}
		if w.dtype == tensor.Float32 {
			w.f32[off+j] = float32(v)
		} else {
			w.f64[off+j] = v
		}
	}
	return nil
}
