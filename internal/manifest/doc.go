// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest provides the Go struct representation of component
// manifests. A manifest is an HCL file that describes the introspectable
// surface of a compiled component: which methods carry resolvable metadata,
// what their parameters are called, and which static annotations apply.
//
// Why manifests at all?
//
// Go reflection exposes a method's parameter types but not its parameter
// names, and it has no notion of annotations. The manifest is the declared
// source of both. A method listed in a manifest becomes resolvable as an
// introspectable executable; a method that is not listed can still be
// resolved as a plain execution handle, but carries no metadata.
//
// Manifests hold only static values. Unlike grid-style configuration there
// are no expressions to evaluate, so parsing a manifest never needs an
// evaluation context.
package manifest
