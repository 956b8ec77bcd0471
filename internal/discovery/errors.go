package discovery

import "fmt"

// ConfigError reports a fatal discovery failure: either the sources for a
// capability could not be enumerated, or one source's declaration stream
// could not be read to completion.
type ConfigError struct {
	Capability string
	SourceURI  string
	Err        error
}

func (e *ConfigError) Error() string {
	if e.SourceURI != "" {
		return fmt.Sprintf("failed to read declarations from source %s: %v", e.SourceURI, e.Err)
	}
	return fmt.Sprintf("failed to enumerate declaration sources for capability %s: %v", e.Capability, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// InstantiationError reports that the factory of an already-resolved
// implementation failed. It is fatal for that one definition and is never
// swallowed.
type InstantiationError struct {
	Name string
	Err  error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate implementation %s: %v", e.Name, e.Err)
}

func (e *InstantiationError) Unwrap() error { return e.Err }
