// Package tokenizer maps text to embedding row ids.
//
// WordTokenizer splits on whitespace and looks each word up in a loaded
// vocabulary. Words that are not in the vocabulary map to the <unk> id, and
// sequences can be padded to a fixed length with the <pad> id, so the output
// indexes directly into the embedding matrix.
//
// Example usage:
//
//	emb, err := wordvec.LoadGloVe("/data/embeddings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok := tokenizer.NewWordTokenizer(emb.Vocab())
//	ids, err := tok.Encode("the quick brown fox")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ids = tok.PadSequence(ids, 32)
package tokenizer
