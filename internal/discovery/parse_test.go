package discovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	t.Run("skips blanks and comments, strips trailing comments", func(t *testing.T) {
		decls, err := parseDeclarations(strings.NewReader("a.B\n# comment\n\nc.D # trailing\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a.B", "c.D "}, decls)
	})

	t.Run("empty stream yields no declarations", func(t *testing.T) {
		decls, err := parseDeclarations(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, decls)
	})

	t.Run("comment-only stream yields no declarations", func(t *testing.T) {
		decls, err := parseDeclarations(strings.NewReader("# one\n#two\n"))
		require.NoError(t, err)
		assert.Empty(t, decls)
	})

	t.Run("preserves order within the stream", func(t *testing.T) {
		decls, err := parseDeclarations(strings.NewReader("x.One\nx.Two\nx.Three\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x.One", "x.Two", "x.Three"}, decls)
	})

	t.Run("surrounding whitespace is preserved at parse level", func(t *testing.T) {
		decls, err := parseDeclarations(strings.NewReader("  x.Padded  \n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"  x.Padded  "}, decls)
	})

	t.Run("read failure surfaces", func(t *testing.T) {
		_, err := parseDeclarations(&failingReader{data: []byte("a.B\n")})
		assert.ErrorContains(t, err, "stream torn")
	})
}
