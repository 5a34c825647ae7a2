// Package project persists the manifest to and from a project directory's
// manifold.yaml. Loading validates the raw document against an embedded
// JSON Schema and gates on the format version before building a
// manifest.Store through its own invariant-checked operations; saving
// serializes deterministically and writes atomically.
package project
