// Package cli defines the Cobra command tree for the manifold CLI. Each
// file in this package registers one top-level command (file, target,
// setting, scheme, etc.) with the root command. Command implementations
// delegate to internal packages for the model logic and only handle flag
// parsing, I/O formatting, and user interaction. Every mutating command is
// one batch: load the manifest, apply the operation, save; on any failure
// nothing is written and the process exits non-zero.
package cli
