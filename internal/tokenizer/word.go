package tokenizer

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/wordvec/internal/vocab"
)

// WordTokenizer implements whitespace tokenization over an embedding vocabulary.
//
// Tokens are matched exactly; no casing or normalization is applied.
type WordTokenizer struct {
	vocab *vocab.Vocabulary
}

var _ Tokenizer = (*WordTokenizer)(nil)

// NewWordTokenizer creates a tokenizer backed by v.
// v must not grow past math.MaxInt32 entries.
func NewWordTokenizer(v *vocab.Vocabulary) *WordTokenizer {
	if v.Len() > math.MaxInt32 {
		panic(fmt.Sprintf("vocabulary of %d entries does not fit int32 ids", v.Len()))
	}
	return &WordTokenizer{vocab: v}
}

// Encode converts text to token IDs, mapping unknown words to the <unk> id.
func (w *WordTokenizer) Encode(text string) ([]int32, error) {
	words := strings.Fields(text)
	tokens := make([]int32, len(words))
	for i, word := range words {
		tokens[i] = int32(w.vocab.Lookup(word)) //nolint:gosec // G115: bounded by NewWordTokenizer
	}
	return tokens, nil
}

// Decode converts token IDs back to space-separated text.
// Padding ids are dropped; any id outside the vocabulary is an error.
func (w *WordTokenizer) Decode(tokens []int32) (string, error) {
	words := make([]string, 0, len(tokens))
	for _, id := range tokens {
		if id == vocab.PadID {
			continue
		}
		word, ok := w.vocab.Token(int(id))
		if !ok {
			return "", fmt.Errorf("token id %d out of range [0, %d)", id, w.vocab.Len())
		}
		words = append(words, word)
	}
	return strings.Join(words, " "), nil
}

// VocabSize returns the number of embedding rows addressable by id.
func (w *WordTokenizer) VocabSize() int {
	return w.vocab.Len()
}

// BosToken returns -1; word vectors carry no sequence markers.
func (w *WordTokenizer) BosToken() int32 {
	return -1
}

// EosToken returns -1; word vectors carry no sequence markers.
func (w *WordTokenizer) EosToken() int32 {
	return -1
}

// PadToken returns the padding token ID.
func (w *WordTokenizer) PadToken() int32 {
	return vocab.PadID
}

// UnkToken returns the unknown token ID.
func (w *WordTokenizer) UnkToken() int32 {
	return vocab.UnkID
}

// IsSpecialToken checks if a token ID is one of the reserved ids.
func (w *WordTokenizer) IsSpecialToken(token int32) bool {
	return token == vocab.PadID || token == vocab.UnkID
}

// PadSequence truncates or right-pads tokens to exactly length ids.
// The input slice is never modified.
func (w *WordTokenizer) PadSequence(tokens []int32, length int) []int32 {
	if length < 0 {
		length = 0
	}
	out := make([]int32, length)
	n := copy(out, tokens)
	for i := n; i < length; i++ {
		out[i] = vocab.PadID
	}
	return out
}

// EncodeBatch encodes every text and pads all sequences to the longest one.
func (w *WordTokenizer) EncodeBatch(texts []string) ([][]int32, error) {
	batch := make([][]int32, len(texts))
	longest := 0
	for i, text := range texts {
		ids, err := w.Encode(text)
		if err != nil {
			return nil, err
		}
		batch[i] = ids
		longest = max(longest, len(ids))
	}
	for i := range batch {
		batch[i] = w.PadSequence(batch[i], longest)
	}
	return batch, nil
}
