package discovery

import (
	"context"

	"github.com/specialistvlad/wirekit/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// defaultWorkers bounds the parse fan-out when the caller does not.
const defaultWorkers = 10

// Scanner runs the discovery pipeline: enumerate the sources for a
// capability, parse them concurrently, and flatten every declaration into
// one lazy definition.
type Scanner struct {
	enum    Enumerator
	loader  Loader
	workers int
}

// NewScanner creates a Scanner. workers bounds the number of sources parsed
// concurrently; values below one select the default.
func NewScanner(enum Enumerator, loader Loader, workers int) *Scanner {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Scanner{enum: enum, loader: loader, workers: workers}
}

// Discover returns one definition per declaration found for the capability,
// across all of its sources. Declarations keep their relative order within a
// source; order across sources is not part of the contract. Identical
// declaration text in two different sources yields two independent
// definitions.
//
// The call either drains every source completely or fails: a single
// unreadable source aborts the whole discovery with *ConfigError, no
// partial results. There is no retry and no cancellation path beyond the
// context passed into source reads.
func (s *Scanner) Discover(ctx context.Context, capability string) ([]*Definition, error) {
	logger := ctxlog.FromContext(ctx)

	sources, err := s.enum.Enumerate(ctx, capability)
	if err != nil {
		return nil, err
	}
	sources = dedupeSources(sources)
	logger.Debug("Discovering declared implementations.", "capability", capability, "sources", len(sources))

	// One slot per source keeps intra-source order without any cross-worker
	// synchronization beyond the group wait.
	perSource := make([][]string, len(sources))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			declarations, err := readSource(src)
			if err != nil {
				return &ConfigError{Capability: capability, SourceURI: src.URI, Err: err}
			}
			perSource[i] = declarations
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var definitions []*Definition
	for _, declarations := range perSource {
		for _, declaration := range declarations {
			definitions = append(definitions, NewDefinition(declaration, s.loader))
		}
	}

	logger.Debug("Discovery complete.", "capability", capability, "definitions", len(definitions))
	return definitions, nil
}

// Instances discovers the capability, drops absent definitions, and loads a
// fresh instance from every present one. The first factory failure aborts
// with *InstantiationError.
func (s *Scanner) Instances(ctx context.Context, capability string) ([]any, error) {
	definitions, err := s.Discover(ctx, capability)
	if err != nil {
		return nil, err
	}

	var instances []any
	for _, definition := range definitions {
		if !definition.IsPresent() {
			continue
		}
		instance, err := definition.Load()
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// readSource opens, parses, and closes one declaration source.
func readSource(src Source) ([]string, error) {
	stream, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return parseDeclarations(stream)
}
