package wordvec

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresets(t *testing.T) {
	assert.Equal(t, 1917494, GloVe.VocabSize)
	assert.Equal(t, 300, GloVe.Dimension)
	assert.Equal(t, 2000000, FastText.VocabSize)
	assert.Equal(t, 300, FastText.Dimension)

	presets := BuiltinPresets()
	assert.Len(t, presets, 2)
	assert.Equal(t, GloVe, presets["glove"])
	assert.Equal(t, FastText, presets["fasttext"])
}

func TestPresetPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "glove.42B.300d.txt"), GloVe.Path("data"))
}

func TestLoadGloVe_MissingFile(t *testing.T) {
	_, err := LoadGloVe(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "glove.42B.300d.txt")
}

func TestLoadFastText_MissingFile(t *testing.T) {
	_, err := LoadFastText(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crawl-300d-2M.vec")
}

func TestLoadPreset_Custom(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.vec"), []byte("2 2\na 1 2\nb 3 4\n"), 0o600))

	p := Preset{Name: "tiny", Filename: "tiny.vec", VocabSize: 2, Dimension: 2, Header: HeaderAuto}
	emb, err := LoadPreset(dir, p, seeded())
	require.NoError(t, err)
	assert.Equal(t, 4, emb.Len())
	assert.Equal(t, 2, emb.Dimension())

	// Caller options override the preset's header mode.
	_, err = LoadPreset(dir, p, WithHeader(HeaderNone))
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestPresetValidate(t *testing.T) {
	assert.NoError(t, GloVe.Validate())
	assert.Error(t, Preset{Name: "x", VocabSize: 1, Dimension: 1}.Validate())
	assert.ErrorIs(t, Preset{Name: "x", Filename: "f", VocabSize: 1}.Validate(), ErrInvalidSize)
}

func TestParsePresets(t *testing.T) {
	input := `
presets:
  - name: glove-6b-50
    filename: glove.6B.50d.txt
    vocab_size: 400000
    dimension: 50
  - name: wiki-news
    filename: wiki-news-300d-1M.vec
    vocab_size: 999994
    dimension: 300
    header: required
`
	presets, err := ParsePresets(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, presets, 4)
	assert.Equal(t, Preset{
		Name:      "glove-6b-50",
		Filename:  "glove.6B.50d.txt",
		VocabSize: 400000,
		Dimension: 50,
		Header:    HeaderNone,
	}, presets["glove-6b-50"])
	assert.Equal(t, HeaderRequired, presets["wiki-news"].Header)
	assert.Equal(t, GloVe, presets["glove"])
}

func TestParsePresets_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "presets:\n  - name: a\n    filename: a\n    vocab_size: 1\n    dimension: 1\n    colour: red\n"},
		{"bad header", "presets:\n  - name: a\n    filename: a\n    vocab_size: 1\n    dimension: 1\n    header: maybe\n"},
		{"missing name", "presets:\n  - filename: a\n    vocab_size: 1\n    dimension: 1\n"},
		{"zero dimension", "presets:\n  - name: a\n    filename: a\n    vocab_size: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParsePresets_Empty(t *testing.T) {
	presets, err := ParsePresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, BuiltinPresets(), presets)
}

func TestLoadPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: fasttext\n    filename: other.vec\n    vocab_size: 3\n    dimension: 2\n    header: auto\n"), 0o600))

	presets, err := LoadPresetsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "other.vec", presets["fasttext"].Filename)
	assert.Equal(t, HeaderAuto, presets["fasttext"].Header)

	_, err = LoadPresetsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
