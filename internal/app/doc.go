// Package app wires the discovery subsystem into a runnable application:
// it builds the logger, populates and validates the component registry from
// compiled-in modules and their manifests, and runs capability discovery
// over the configured service roots.
package app
