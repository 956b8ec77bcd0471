// Package handle resolves optimized callable handles for named methods on
// component types and instances, so the wiring container does not repeat a
// full reflective lookup on every invocation.
//
// Resolution comes in three tiers, all sharing the same exact-match logic:
//
//   - a plain Handle, bound to a type or an instance;
//   - an Executable, a handle that additionally carries manifest metadata
//     (parameter names, annotations) for introspection;
//   - a proxy-target Executable, resolved on the origin type behind a
//     generated forwarding proxy.
//
// The Find* primitives report absence through their second return value;
// absence is a normal outcome. The Get* convenience wrappers convert
// absence into a *NoSuchMethodError with a stable, user-facing message.
// Resolution results are not cached across calls; callers own caching.
package handle
