// Package tokenizer maps text to embedding row ids.
//
// This package wraps the internal tokenizer implementation and provides
// a clean public API for turning text into indices of a loaded embedding table.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/wordvec/embedding"
//	    "github.com/born-ml/wordvec/tokenizer"
//	)
//
//	emb, err := embedding.LoadGloVe("/data/embeddings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok := tokenizer.NewWordTokenizer(emb.Vocab())
//	ids, err := tok.Encode("Hello, world!")
//	if err != nil {
//	    log.Fatal(err)
//	}
package tokenizer

import (
	"github.com/born-ml/wordvec/internal/tokenizer"
	"github.com/born-ml/wordvec/internal/vocab"
)

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations must implement this interface.
type Tokenizer = tokenizer.Tokenizer

// WordTokenizer maps whitespace-separated words to vocabulary ids.
type WordTokenizer = tokenizer.WordTokenizer

// NewWordTokenizer creates a tokenizer over a loaded vocabulary.
//
// Unknown words map to the <unk> id; PadSequence fills with the <pad> id.
func NewWordTokenizer(v *vocab.Vocabulary) *WordTokenizer {
	return tokenizer.NewWordTokenizer(v)
}
