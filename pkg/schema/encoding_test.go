package schema_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/latextree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "label: Café\n" with é as the single Latin-1 byte 0xE9.
var latin1Definition = []byte{'l', 'a', 'b', 'e', 'l', ':', ' ', 'C', 'a', 'f', 0xE9, '\n'}

func TestReadAll_Latin1(t *testing.T) {
	for _, name := range []string{"latin1", "ISO-8859-1", "windows-1252"} {
		t.Run(name, func(t *testing.T) {
			roots, err := schema.ReadAll(bytes.NewReader(latin1Definition), name)
			require.NoError(t, err)
			require.Len(t, roots, 1)
			assert.Equal(t, "Café", roots[0].Node().Label())
		})
	}
}

func TestReadAll_UTF8Passthrough(t *testing.T) {
	roots, err := schema.ReadAll(bytes.NewReader([]byte("label: Café\n")), "")
	require.NoError(t, err)
	assert.Equal(t, "Café", roots[0].Node().Label())
}

func TestNewReader_Unknown(t *testing.T) {
	_, err := schema.NewReader(bytes.NewReader(nil), "ebcdic")
	assert.ErrorIs(t, err, schema.ErrUnknownEncoding)
}

func TestLoadFileEncoded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.yaml")
	require.NoError(t, os.WriteFile(path, latin1Definition, 0o644))

	roots, err := schema.LoadFileEncoded(path, "cp1252")
	require.NoError(t, err)
	assert.Equal(t, "Café", roots[0].Node().Label())

	_, err = schema.LoadFile(path)
	assert.Error(t, err, "Latin-1 bytes are not valid UTF-8 YAML")
}
