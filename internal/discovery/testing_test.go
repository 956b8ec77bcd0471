package discovery

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/specialistvlad/wirekit/internal/registry"
)

// fakeLoader is a Loader over a fixed component set that counts lookups.
type fakeLoader struct {
	mu         sync.Mutex
	lookups    int
	components map[string]*registry.Component
}

func (f *fakeLoader) LookupComponent(name string) (*registry.Component, bool) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()
	c, ok := f.components[name]
	return c, ok
}

func (f *fakeLoader) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

// staticEnumerator returns a fixed source set regardless of capability.
type staticEnumerator struct {
	sources []Source
	err     error
}

func (e *staticEnumerator) Enumerate(_ context.Context, _ string) ([]Source, error) {
	return e.sources, e.err
}

// textSource wraps literal declaration text as a Source.
func textSource(uri, content string) Source {
	return Source{
		URI:  uri,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(content)), nil },
	}
}

// failingReader yields its data on the first read and then fails mid-stream.
type failingReader struct {
	data []byte
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("stream torn")
}

func (r *failingReader) Close() error { return nil }
