package wordvec

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HeaderMode controls how the first line of an input file is interpreted.
//
// fastText .vec files begin with a "count dim" line; GloVe files do not.
type HeaderMode int

// Supported header modes.
const (
	// HeaderNone treats every line as a vector record.
	HeaderNone HeaderMode = iota

	// HeaderAuto consumes the first line if it looks like "count dim".
	// Detection is disabled for dimension 1, where a header and a record
	// are indistinguishable.
	HeaderAuto

	// HeaderRequired fails unless the first line is a "count dim" header.
	HeaderRequired
)

// String returns the mode name.
func (m HeaderMode) String() string {
	switch m {
	case HeaderNone:
		return "none"
	case HeaderAuto:
		return "auto"
	case HeaderRequired:
		return "required"
	default:
		return "unknown"
	}
}

// ParseHeaderMode converts a mode name back into a HeaderMode.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return HeaderNone, nil
	case "auto":
		return HeaderAuto, nil
	case "required":
		return HeaderRequired, nil
	default:
		return HeaderNone, fmt.Errorf("unknown header mode %q", s)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (m HeaderMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *HeaderMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseHeaderMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// checkHeader reports whether line is a header to skip.
func checkHeader(line string, vocabSize, dimension int, mode HeaderMode) (bool, error) {
	count, dim, ok := parseHeader(line)
	if mode == HeaderAuto && dimension == 1 {
		ok = false
	}

	if !ok {
		if mode == HeaderRequired {
			return false, &HeaderError{Line: line, Details: `expected "count dim"`}
		}
		return false, nil
	}

	if count != vocabSize || dim != dimension {
		return false, &HeaderError{
			Line:      line,
			Count:     count,
			Dimension: dim,
			Details:   fmt.Sprintf("header declares %d x %d, expected %d x %d", count, dim, vocabSize, dimension),
		}
	}
	return true, nil
}

func parseHeader(line string) (count, dim int, ok bool) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return 0, 0, false
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return 0, 0, false
	}
	dim, err = strconv.Atoi(fields[1])
	if err != nil || dim <= 0 {
		return 0, 0, false
	}
	return count, dim, true
}
