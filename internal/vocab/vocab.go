// Package vocab maps tokens to embedding row indices and back.
//
// Indices 0 and 1 are always reserved for the padding and unknown tokens.
// Every other token receives the next sequential index in registration order.
package vocab

import "fmt"

// Reserved tokens and their fixed indices.
const (
	PadToken = "<pad>"
	UnkToken = "<unk>"

	PadID = 0
	UnkID = 1

	// NumReserved is the number of indices taken by reserved tokens.
	NumReserved = 2
)

// ReservedTokens returns the reserved tokens ordered by index.
func ReservedTokens() []string {
	return []string{PadToken, UnkToken}
}

// Vocabulary is a bidirectional token <-> index mapping.
//
// Re-registering a token points its lookup at the newest index. The older
// index keeps its token in the index -> token direction and is counted as
// shadowed.
//
// The reserved tokens stay pinned to PadID and UnkID. A reserved token that
// appears again past the reserved range is kept apart in its own lookup so it
// never takes over the reserved index.
type Vocabulary struct {
	ids      map[string]int // token -> index
	tokens   []string       // index -> token
	aliases  map[string]int // reserved token -> index past the reserved range
	shadowed int
}

// New creates a vocabulary holding only the reserved tokens.
// capacity pre-sizes the index space, including reserved entries.
func New(capacity int) *Vocabulary {
	if capacity < NumReserved {
		capacity = NumReserved
	}
	v := &Vocabulary{
		ids:     make(map[string]int, capacity),
		tokens:  make([]string, 0, capacity),
		aliases: make(map[string]int),
	}
	for _, tok := range ReservedTokens() {
		v.Add(tok)
	}
	return v
}

// FromTokens rebuilds a vocabulary from an index-ordered token list.
// The list must start with the reserved tokens.
func FromTokens(tokens []string) (*Vocabulary, error) {
	if len(tokens) < NumReserved {
		return nil, fmt.Errorf("vocabulary has %d tokens, need at least %d reserved", len(tokens), NumReserved)
	}
	for i, tok := range ReservedTokens() {
		if tokens[i] != tok {
			return nil, fmt.Errorf("index %d holds %q, want reserved token %q", i, tokens[i], tok)
		}
	}

	v := New(len(tokens))
	for _, tok := range tokens[NumReserved:] {
		v.Add(tok)
	}
	return v, nil
}

// Add registers token at the next index and returns that index.
func (v *Vocabulary) Add(token string) int {
	idx := len(v.tokens)
	lookup := v.ids
	if idx >= NumReserved && IsReservedToken(token) {
		lookup = v.aliases
	}
	if _, exists := lookup[token]; exists {
		v.shadowed++
	}
	lookup[token] = idx
	v.tokens = append(v.tokens, token)
	return idx
}

// IsReservedToken reports whether token is one of the reserved tokens.
func IsReservedToken(token string) bool {
	return token == PadToken || token == UnkToken
}

// Alias returns the index of a reserved token registered past the reserved range.
func (v *Vocabulary) Alias(token string) (int, bool) {
	id, ok := v.aliases[token]
	return id, ok
}

// ID returns the index of token.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Lookup returns the index of token, or UnkID if it is not registered.
func (v *Vocabulary) Lookup(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return UnkID
}

// Token returns the token stored at index id.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.tokens) {
		return "", false
	}
	return v.tokens[id], true
}

// Len returns the number of assigned indices, reserved ones included.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Distinct returns the number of entries in the token -> index direction,
// counting reserved-token aliases separately.
func (v *Vocabulary) Distinct() int {
	return len(v.ids) + len(v.aliases)
}

// Shadowed returns how many indices are no longer reachable by token lookup.
func (v *Vocabulary) Shadowed() int {
	return v.shadowed
}

// IsReserved reports whether id is a reserved index.
func (v *Vocabulary) IsReserved(id int) bool {
	return id >= 0 && id < NumReserved
}

// Reachable reports whether looking up the token stored at id yields id again.
func (v *Vocabulary) Reachable(id int) bool {
	tok, ok := v.Token(id)
	if !ok {
		return false
	}
	if id >= NumReserved && IsReservedToken(tok) {
		return v.aliases[tok] == id
	}
	return v.ids[tok] == id
}

// Tokens returns a copy of the index -> token list.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// TokenToIndex returns a copy of the token -> index mapping.
func (v *Vocabulary) TokenToIndex() map[string]int {
	out := make(map[string]int, len(v.ids))
	for tok, id := range v.ids {
		out[tok] = id
	}
	return out
}

// IndexToToken returns a copy of the index -> token mapping.
func (v *Vocabulary) IndexToToken() map[int]string {
	out := make(map[int]string, len(v.tokens))
	for id, tok := range v.tokens {
		out[id] = tok
	}
	return out
}
