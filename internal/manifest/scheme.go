package manifest

import "fmt"

// GenerateScheme creates a scheme binding target as both the build and
// launch participant. It fails with ErrUnknownTarget if no such target
// exists. Regenerating an existing scheme name overwrites it in place, so
// the latest generation wins.
func (s *Store) GenerateScheme(name, target string, shared bool) (*Scheme, error) {
	if name == "" {
		return nil, fmt.Errorf("scheme name must not be empty")
	}
	if s.byName[target] == nil {
		return nil, fmt.Errorf("scheme %q: target %q: %w", name, target, ErrUnknownTarget)
	}

	if existing := s.Scheme(name); existing != nil {
		existing.Target = target
		existing.Shared = shared
		return existing, nil
	}

	sc := &Scheme{Name: name, Target: target, Shared: shared}
	s.schemes = append(s.schemes, sc)
	return sc, nil
}

// RemoveScheme deletes the scheme with the given name. It fails with
// ErrNotFound if no such scheme exists.
func (s *Store) RemoveScheme(name string) error {
	for i, sc := range s.schemes {
		if sc.Name == name {
			s.schemes = append(s.schemes[:i], s.schemes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("scheme %q: %w", name, ErrNotFound)
}
