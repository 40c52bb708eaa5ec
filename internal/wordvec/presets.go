package wordvec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preset describes a well-known vector file: where it lives relative to a
// base directory and the sizes it must have.
type Preset struct {
	Name      string     `yaml:"name"`
	Filename  string     `yaml:"filename"`
	VocabSize int        `yaml:"vocab_size"`
	Dimension int        `yaml:"dimension"`
	Header    HeaderMode `yaml:"header"`
}

// Built-in presets.
var (
	// GloVe is the Common Crawl 42B-token, 300-d GloVe release.
	GloVe = Preset{
		Name:      "glove",
		Filename:  "glove.42B.300d.txt",
		VocabSize: 1917494,
		Dimension: 300,
		Header:    HeaderNone,
	}

	// FastText is the Common Crawl 2M-word, 300-d fastText release.
	// The published .vec file starts with a "2000000 300" header line.
	FastText = Preset{
		Name:      "fasttext",
		Filename:  "crawl-300d-2M.vec",
		VocabSize: 2000000,
		Dimension: 300,
		Header:    HeaderAuto,
	}
)

// Validate checks that the preset can drive a load.
func (p Preset) Validate() error {
	if p.Filename == "" {
		return fmt.Errorf("preset %q: empty filename", p.Name)
	}
	if p.VocabSize < 0 || p.Dimension <= 0 {
		return fmt.Errorf("preset %q: %w: vocab_size=%d dimension=%d", p.Name, ErrInvalidSize, p.VocabSize, p.Dimension)
	}
	return nil
}

// Path joins baseDir and the preset filename.
func (p Preset) Path(baseDir string) string {
	return filepath.Join(baseDir, p.Filename)
}

// LoadPreset loads the preset's file from baseDir.
// Options are applied after the preset's own header mode, so they win.
func LoadPreset(baseDir string, p Preset, opts ...Option) (*Embeddings, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	all := append([]Option{WithHeader(p.Header)}, opts...)
	return Load(p.Path(baseDir), p.VocabSize, p.Dimension, all...)
}

// LoadGloVe loads glove.42B.300d.txt from baseDir.
func LoadGloVe(baseDir string, opts ...Option) (*Embeddings, error) {
	return LoadPreset(baseDir, GloVe, opts...)
}

// LoadFastText loads crawl-300d-2M.vec from baseDir.
func LoadFastText(baseDir string, opts ...Option) (*Embeddings, error) {
	return LoadPreset(baseDir, FastText, opts...)
}

// BuiltinPresets returns the built-in presets keyed by name.
func BuiltinPresets() map[string]Preset {
	return map[string]Preset{
		GloVe.Name:    GloVe,
		FastText.Name: FastText,
	}
}

// presetFile is the YAML layout accepted by ParsePresets.
//
//	presets:
//	  - name: glove-6b-50
//	    filename: glove.6B.50d.txt
//	    vocab_size: 400000
//	    dimension: 50
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// ParsePresets decodes YAML preset definitions and merges them over the built-ins.
func ParsePresets(r io.Reader) (map[string]Preset, error) {
	var file presetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	presets := BuiltinPresets()
	for i, p := range file.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: missing name", i)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// LoadPresetsFile reads preset definitions from a YAML file.
func LoadPresetsFile(path string) (map[string]Preset, error) {
	//nolint:gosec // G304: config path is supplied by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open presets: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParsePresets(file)
}
