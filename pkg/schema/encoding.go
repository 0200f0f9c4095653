package schema

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/latextree/pkg/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for an input encoding name that is not supported.
var ErrUnknownEncoding = errors.New("unknown input encoding")

var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// NewReader converts r from the named encoding to UTF-8.
// An empty name, "utf-8" or "utf8" returns r unchanged.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ReadAll reads r in the named encoding and decodes every document it contains.
func ReadAll(r io.Reader, encodingName string) ([]domain.Child, error) {
	utf8Reader, err := NewReader(r, encodingName)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	return ParseAll(data)
}
