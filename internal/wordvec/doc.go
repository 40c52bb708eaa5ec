// Package wordvec loads pretrained word vectors into an embedding table.
//
// Input files are plain text with one record per line:
//
//	token v1 v2 ... vD
//
// Fields are separated by a single ASCII space. The loader streams the file
// once, writing each vector into the next row of a [vocabSize+2, D] matrix.
// Rows 0 and 1 belong to the reserved <pad> and <unk> tokens and are filled
// from N(0, 1) so they start out distinguishable and trainable.
//
// Example:
//
//	emb, err := wordvec.LoadGloVe("/data/embeddings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matrix, word2id, id2word := emb.Triple()
//	fmt.Println(matrix.Shape(), len(word2id), len(id2word))
//
// Any malformed line or a vocabulary size that differs from the declared one
// aborts the load; no partial result is ever returned.
package wordvec
