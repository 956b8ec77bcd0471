// Package discovery finds declared implementations of a capability across a
// set of search roots and wraps each declaration in a lazily resolved
// definition.
//
// A capability is identified by a stable name. Each search root may carry a
// declaration file for that capability under a fixed namespace path; every
// non-comment line in such a file names one implementation. Declaration
// files are parsed concurrently and the resulting definitions resolve their
// backing component only on first access.
//
// A name that resolves to nothing is a normal outcome (the definition is
// simply absent). An unreadable source is not: one failing source aborts the
// entire discovery call. Callers that want partial results must wrap the
// call with their own continue-on-error policy.
package discovery
