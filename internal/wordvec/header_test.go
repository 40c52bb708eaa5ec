package wordvec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_AutoConsumesHeader(t *testing.T) {
	emb, err := LoadReader(strings.NewReader("2 3\na 1 2 3\nb 4 5 6\n"), 2, 3, WithHeader(HeaderAuto))
	require.NoError(t, err)

	assert.Equal(t, 4, emb.Len())
	_, ok := emb.Vocab().ID("2")
	assert.False(t, ok)
	assert.Equal(t, 2, emb.Vocab().Lookup("a"))
}

func TestHeader_AutoWithoutHeader(t *testing.T) {
	emb, err := LoadReader(strings.NewReader("a 1 2 3\nb 4 5 6\n"), 2, 3, WithHeader(HeaderAuto))
	require.NoError(t, err)
	assert.Equal(t, 4, emb.Len())
}

func TestHeader_AutoDimensionOne(t *testing.T) {
	// "5 1" is a record here: token "5", vector [1].
	emb, err := LoadReader(strings.NewReader("5 1\nb 2\n"), 2, 1, WithHeader(HeaderAuto))
	require.NoError(t, err)
	assert.Equal(t, 2, emb.Vocab().Lookup("5"))
}

func TestHeader_Mismatch(t *testing.T) {
	_, err := LoadReader(strings.NewReader("3 3\na 1 2 3\nb 4 5 6\n"), 2, 3, WithHeader(HeaderAuto))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHeader)

	var herr *HeaderError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, 3, herr.Count)
	assert.Equal(t, 3, herr.Dimension)
}

func TestHeader_Required(t *testing.T) {
	_, err := LoadReader(strings.NewReader("a 1 2 3\n"), 1, 3, WithHeader(HeaderRequired))
	assert.ErrorIs(t, err, ErrInvalidHeader)

	_, err = LoadReader(strings.NewReader(""), 0, 3, WithHeader(HeaderRequired))
	assert.ErrorIs(t, err, ErrInvalidHeader)

	emb, err := LoadReader(strings.NewReader("1 3\na 1 2 3\n"), 1, 3, WithHeader(HeaderRequired))
	require.NoError(t, err)
	assert.Equal(t, 3, emb.Len())
}

func TestHeader_NoneTreatsHeaderAsData(t *testing.T) {
	_, err := LoadReader(strings.NewReader("1 3\na 1 2 3\n"), 1, 3)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseHeaderMode(t *testing.T) {
	tests := []struct {
		in      string
		want    HeaderMode
		wantErr bool
	}{
		{"", HeaderNone, false},
		{"none", HeaderNone, false},
		{"Auto", HeaderAuto, false},
		{"required", HeaderRequired, false},
		{"sometimes", HeaderNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHeaderMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.String(), strings.ToLower(got.String()))
		})
	}
}
