package wordvec

import (
	"fmt"
	"math"
	"sort"

	"github.com/born-ml/wordvec/internal/tensor"
	"github.com/born-ml/wordvec/internal/vocab"
)

// Embeddings is a loaded embedding table together with its vocabulary.
//
// Row i of the matrix is the vector of the token at index i. The caller owns
// both after a load returns; the loader keeps no reference.
type Embeddings struct {
	matrix *tensor.RawTensor
	vocab  *vocab.Vocabulary
}

// Matrix returns the [Len, Dimension] embedding matrix.
func (e *Embeddings) Matrix() *tensor.RawTensor {
	return e.matrix
}

// Vocab returns the token <-> index mapping.
func (e *Embeddings) Vocab() *vocab.Vocabulary {
	return e.vocab
}

// Len returns the number of rows, reserved ones included.
func (e *Embeddings) Len() int {
	return e.matrix.Rows()
}

// Dimension returns the vector width.
func (e *Embeddings) Dimension() int {
	return e.matrix.Cols()
}

// Triple returns the matrix with freshly copied token -> index and index -> token maps.
func (e *Embeddings) Triple() (*tensor.RawTensor, map[string]int, map[int]string) {
	return e.matrix, e.vocab.TokenToIndex(), e.vocab.IndexToToken()
}

// Row returns a float64 copy of row id.
func (e *Embeddings) Row(id int) ([]float64, error) {
	if id < 0 || id >= e.Len() {
		return nil, fmt.Errorf("row %d out of range [0, %d)", id, e.Len())
	}
	return e.matrix.RowFloat64(id), nil
}

// Vector returns the vector for token, falling back to the <unk> row.
func (e *Embeddings) Vector(token string) []float64 {
	return e.matrix.RowFloat64(e.vocab.Lookup(token))
}

// Cosine returns the cosine similarity between two tokens' vectors.
func (e *Embeddings) Cosine(a, b string) (float64, error) {
	ida, ok := e.vocab.ID(a)
	if !ok {
		return 0, fmt.Errorf("token %q not in vocabulary", a)
	}
	idb, ok := e.vocab.ID(b)
	if !ok {
		return 0, fmt.Errorf("token %q not in vocabulary", b)
	}
	return cosine(e.matrix.RowFloat64(ida), e.matrix.RowFloat64(idb)), nil
}

// Neighbor is one result of a nearest-token query.
type Neighbor struct {
	Token      string
	ID         int
	Similarity float64
}

// Nearest returns up to n tokens most similar to token by cosine similarity.
//
// Reserved rows, the query itself, and rows shadowed by a later duplicate
// are skipped. Results are ordered by decreasing similarity.
func (e *Embeddings) Nearest(token string, n int) ([]Neighbor, error) {
	id, ok := e.vocab.ID(token)
	if !ok {
		return nil, fmt.Errorf("token %q not in vocabulary", token)
	}
	if n <= 0 {
		return nil, nil
	}
	n = min(n, e.Len())

	query := e.matrix.RowFloat64(id)
	best := make([]Neighbor, 0, n+1)

	for i := vocab.NumReserved; i < e.Len(); i++ {
		if i == id || !e.vocab.Reachable(i) {
			continue
		}
		sim := cosine(query, e.matrix.RowFloat64(i))
		if len(best) == n && sim <= best[n-1].Similarity {
			continue
		}

		tok, _ := e.vocab.Token(i)
		pos := sort.Search(len(best), func(k int) bool { return best[k].Similarity < sim })
		best = append(best, Neighbor{})
		copy(best[pos+1:], best[pos:])
		best[pos] = Neighbor{Token: tok, ID: i, Similarity: sim}
		if len(best) > n {
			best = best[:n]
		}
	}
	return best, nil
}

// cosine returns 0 when either vector has zero norm.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
