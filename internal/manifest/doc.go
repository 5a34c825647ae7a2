// Package manifest implements the in-memory project manifest: a tree of
// groups holding file references, a set of build targets with ordered build
// phases and configuration scopes, and named build/launch schemes. The Store
// is the single source of truth; every mutation either fully succeeds or
// fails with one of the sentinel error kinds, leaving the prior state intact.
package manifest
