// Package registry provides the central "glue" for the component system.
//
// The Registry stores mappings between the implementation names that appear
// in service declaration files (e.g. "components/clock.Clock") and the
// compiled Go factories and types that back them. It also holds per-method
// metadata contributed by component manifests, and the origin types behind
// generated forwarding proxies.
//
// During application startup the registry is populated by compiled-in
// components and their manifests, then validated so that manifests and Go
// code cannot drift apart silently.
package registry
