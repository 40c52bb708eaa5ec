package wordvec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/wordvec/internal/tensor"
	"github.com/born-ml/wordvec/internal/vocab"
)

// SafeTensors layout:
// [8 bytes: header_size (uint64 LE)]
// [header_size bytes: JSON header]
// [tensor data: raw bytes]

const (
	// TensorName is the name of the embedding matrix inside an export.
	TensorName = "embeddings"

	exportFormat = "wordvec"

	// Vocabulary is stored in the header, so it is allowed to be large.
	maxHeaderSize = 512 * 1024 * 1024
)

type safeTensorInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end]
}

// Save writes the table to path in SafeTensors format.
//
// The matrix is stored as tensor "embeddings"; the index-ordered vocabulary
// is stored newline-joined in the "vocab" metadata entry.
func (e *Embeddings) Save(path string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for export
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := e.Encode(file); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}

// Encode writes the SafeTensors encoding of the table to w.
func (e *Embeddings) Encode(w io.Writer) error {
	shape := e.matrix.Shape()
	size := int64(e.matrix.ByteSize())

	header := map[string]interface{}{
		"__metadata__": map[string]string{
			"format": exportFormat,
			"vocab":  strings.Join(e.vocab.Tokens(), "\n"),
			"pad_id": strconv.Itoa(vocab.PadID),
			"unk_id": strconv.Itoa(vocab.UnkID),
		},
		TensorName: safeTensorInfo{
			DType:       dtypeToSafeTensors(e.matrix.DType()),
			Shape:       []int64{int64(shape[0]), int64(shape[1])},
			DataOffsets: [2]int64{0, size},
		},
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(e.matrix.Data()); err != nil {
		return fmt.Errorf("failed to write tensor %s: %w", TensorName, err)
	}
	return nil
}

// Open reads a table previously written by Save.
func Open(path string) (*Embeddings, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file)
}

// Decode reads a table from the SafeTensors stream r.
func Decode(r io.Reader) (*Embeddings, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > maxHeaderSize {
		return nil, fmt.Errorf("%w: header size %d too large", ErrInvalidExport, headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	var meta map[string]string
	if m, ok := raw["__metadata__"]; ok {
		if err := json.Unmarshal(m, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	if meta["format"] != exportFormat {
		return nil, fmt.Errorf("%w: format %q", ErrInvalidExport, meta["format"])
	}

	infoRaw, ok := raw[TensorName]
	if !ok {
		return nil, fmt.Errorf("%w: tensor %s not found", ErrInvalidExport, TensorName)
	}
	var info safeTensorInfo
	if err := json.Unmarshal(infoRaw, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tensor %s: %w", TensorName, err)
	}

	dtype, err := safeTensorsToDType(info.DType)
	if err != nil {
		return nil, err
	}
	if len(info.Shape) != 2 {
		return nil, fmt.Errorf("%w: tensor shape %v is not 2D", ErrInvalidExport, info.Shape)
	}
	shape := tensor.Shape{int(info.Shape[0]), int(info.Shape[1])}

	matrix, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExport, err)
	}
	if size := info.DataOffsets[1] - info.DataOffsets[0]; info.DataOffsets[0] != 0 || size != int64(matrix.ByteSize()) {
		return nil, fmt.Errorf("%w: data offsets %v do not match shape %v", ErrInvalidExport, info.DataOffsets, shape)
	}
	if _, err := io.ReadFull(r, matrix.Data()); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	voc, err := vocab.FromTokens(strings.Split(meta["vocab"], "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExport, err)
	}
	if voc.Len() != shape[0] {
		return nil, fmt.Errorf("%w: %d tokens for %d rows", ErrInvalidExport, voc.Len(), shape[0])
	}

	return &Embeddings{matrix: matrix, vocab: voc}, nil
}

func dtypeToSafeTensors(dt tensor.DataType) string {
	switch dt {
	case tensor.Float64:
		return "F64"
	default:
		return "F32"
	}
}

func safeTensorsToDType(s string) (tensor.DataType, error) {
	switch s {
	case "F32":
		return tensor.Float32, nil
	case "F64":
		return tensor.Float64, nil
	default:
		return 0, fmt.Errorf("%w: unsupported dtype %s", ErrInvalidExport, s)
	}
}
