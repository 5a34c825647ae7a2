package manifest

import "errors"

// Sentinel errors for manifest operations. Callers match with errors.Is;
// the wrapped message names the offending identifier.
var (
	// ErrDuplicateEntry indicates a name collision in a scope that requires uniqueness.
	ErrDuplicateEntry = errors.New("manifest: duplicate entry")

	// ErrNotFound indicates a path or name that does not exist in the manifest.
	ErrNotFound = errors.New("manifest: not found")

	// ErrAmbiguous indicates a partial lookup that matches more than one entry.
	ErrAmbiguous = errors.New("manifest: ambiguous reference")

	// ErrUnknownTarget indicates a target name absent from the store.
	ErrUnknownTarget = errors.New("manifest: unknown target")

	// ErrInvalidKind indicates an incompatible declared kind for a file reference.
	ErrInvalidKind = errors.New("manifest: invalid reference kind")
)
