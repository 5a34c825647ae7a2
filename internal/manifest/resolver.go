package manifest

import "fmt"

// Resolve finds the file reference at a slash-separated path. Intermediate
// segments must name existing groups; resolution never creates structure.
// A bare leaf name (no slashes) is searched across the whole tree and must
// match exactly one reference, otherwise it fails with ErrAmbiguous.
// Matching is exact and case-sensitive.
func (s *Store) Resolve(path string) (*FileReference, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrNotFound)
	}

	if len(segments) == 1 {
		matches := findByLeaf(s.root, segments[0], nil)
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("file %q: %w", path, ErrNotFound)
		case 1:
			return matches[0], nil
		default:
			return nil, fmt.Errorf("file %q exists in %d groups, use a full path: %w", path, len(matches), ErrAmbiguous)
		}
	}

	g := s.root
	for _, seg := range segments[:len(segments)-1] {
		child := g.byName[seg]
		if child == nil {
			return nil, fmt.Errorf("group %q in path %q: %w", seg, path, ErrNotFound)
		}
		g = child
	}

	leaf := segments[len(segments)-1]
	ref := g.fileIdx[leaf]
	if ref == nil {
		return nil, fmt.Errorf("file %q in group %q: %w", leaf, g.Path(), ErrNotFound)
	}
	return ref, nil
}

// ResolveGroup finds the group at a slash-separated path without creating
// it. An empty path resolves to the root.
func (s *Store) ResolveGroup(path string) (*Group, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	g := s.root
	for _, seg := range segments {
		child := g.byName[seg]
		if child == nil {
			return nil, fmt.Errorf("group %q in path %q: %w", seg, path, ErrNotFound)
		}
		g = child
	}
	return g, nil
}

// findByLeaf collects every file reference named leaf in the subtree rooted
// at g, in depth-first order.
func findByLeaf(g *Group, leaf string, acc []*FileReference) []*FileReference {
	if ref := g.fileIdx[leaf]; ref != nil {
		acc = append(acc, ref)
	}
	for _, child := range g.children {
		acc = findByLeaf(child, leaf, acc)
	}
	return acc
}
