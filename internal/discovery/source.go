package discovery

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/wirekit/internal/ctxlog"
)

// NamespaceDir is the fixed directory name under each search root where
// capability declaration files live. The declarations for capability N are
// read from <root>/services/N in every root that carries such a file.
const NamespaceDir = "services"

// Source is one addressable origin of declaration text for a capability.
type Source struct {
	// URI identifies the source. Sources are deduplicated by URI before
	// parsing.
	URI string

	// Open returns the declaration stream. The caller closes it.
	Open func() (io.ReadCloser, error)
}

// Enumerator produces the set of sources registered for a capability.
type Enumerator interface {
	// Enumerate returns the distinct sources for the named capability. An
	// I/O failure during enumeration is fatal and returns a *ConfigError.
	Enumerate(ctx context.Context, capability string) ([]Source, error)
}

// PathEnumerator enumerates declaration files across an ordered list of
// search roots, the way separately-built component sets each contribute
// their own declarations for the same capability.
type PathEnumerator struct {
	Roots []string
}

// Enumerate implements Enumerator over the configured roots.
func (e *PathEnumerator) Enumerate(ctx context.Context, capability string) ([]Source, error) {
	logger := ctxlog.FromContext(ctx)

	var sources []Source
	for _, root := range e.Roots {
		candidate := filepath.Join(root, NamespaceDir, capability)

		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &ConfigError{Capability: capability, Err: err}
		}
		if info.IsDir() {
			logger.Warn("Declaration path is a directory, skipping.", "path", candidate)
			continue
		}

		uri := candidate
		if abs, err := filepath.Abs(candidate); err == nil {
			uri = abs
		}

		path := candidate
		sources = append(sources, Source{
			URI:  uri,
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}

	logger.Debug("Enumerated declaration sources.", "capability", capability, "count", len(sources))
	return sources, nil
}

// dedupeSources drops sources whose URI was already seen, preserving the
// order of first appearance.
func dedupeSources(sources []Source) []Source {
	seen := make(map[string]struct{}, len(sources))
	out := make([]Source, 0, len(sources))
	for _, src := range sources {
		if _, ok := seen[src.URI]; ok {
			continue
		}
		seen[src.URI] = struct{}{}
		out = append(out, src)
	}
	return out
}
