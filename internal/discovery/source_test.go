package discovery

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeclarations(t *testing.T, root, capability, content string) {
	t.Helper()
	dir := filepath.Join(root, NamespaceDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, capability), []byte(content), 0o644))
}

func TestPathEnumerator(t *testing.T) {
	ctx := context.Background()

	t.Run("collects one source per root that declares the capability", func(t *testing.T) {
		rootA := t.TempDir()
		rootB := t.TempDir()
		rootC := t.TempDir() // no declarations at all
		writeDeclarations(t, rootA, "demo.Capability", "a.B\n")
		writeDeclarations(t, rootB, "demo.Capability", "c.D\n")

		enum := &PathEnumerator{Roots: []string{rootA, rootB, rootC}}
		sources, err := enum.Enumerate(ctx, "demo.Capability")
		require.NoError(t, err)
		assert.Len(t, sources, 2)
	})

	t.Run("different capabilities do not leak into each other", func(t *testing.T) {
		root := t.TempDir()
		writeDeclarations(t, root, "demo.Capability", "a.B\n")

		enum := &PathEnumerator{Roots: []string{root}}
		sources, err := enum.Enumerate(ctx, "other.Capability")
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("sources open to their declaration content", func(t *testing.T) {
		root := t.TempDir()
		writeDeclarations(t, root, "demo.Capability", "a.B\nc.D\n")

		enum := &PathEnumerator{Roots: []string{root}}
		sources, err := enum.Enumerate(ctx, "demo.Capability")
		require.NoError(t, err)
		require.Len(t, sources, 1)

		stream, err := sources[0].Open()
		require.NoError(t, err)
		defer stream.Close()
		content, err := io.ReadAll(stream)
		require.NoError(t, err)
		assert.Equal(t, "a.B\nc.D\n", string(content))
	})

	t.Run("a directory at the declaration path is skipped", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, NamespaceDir, "demo.Capability"), 0o755))

		enum := &PathEnumerator{Roots: []string{root}}
		sources, err := enum.Enumerate(ctx, "demo.Capability")
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("end to end through the scanner over real files", func(t *testing.T) {
		rootA := t.TempDir()
		rootB := t.TempDir()
		writeDeclarations(t, rootA, "demo.Capability", "w.Widget\n# nothing else\n")
		writeDeclarations(t, rootB, "demo.Capability", "w.DoesNotExist\n")

		scanner := NewScanner(&PathEnumerator{Roots: []string{rootA, rootB}}, widgetLoader(), 2)
		definitions, err := scanner.Discover(ctx, "demo.Capability")
		require.NoError(t, err)
		require.Len(t, definitions, 2)

		present := 0
		for _, definition := range definitions {
			if definition.IsPresent() {
				present++
			}
		}
		assert.Equal(t, 1, present)
	})
}
