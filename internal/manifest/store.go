package manifest

import (
	"fmt"
	"strings"
)

// Store owns the group tree, the target set, and the scheme set. All
// mutations go through Store methods so the cross-cutting invariants
// (leaf-name uniqueness, no dangling build-phase references, one product
// per target) hold by construction. A Store is not safe for concurrent
// use; the intended caller is a single load-mutate-persist batch.
type Store struct {
	root    *Group
	targets []*Target
	byName  map[string]*Target
	schemes []*Scheme
	project *ConfigurationSet
}

// NewStore returns an empty manifest with an unnamed root group.
func NewStore() *Store {
	return &Store{
		root:    newGroup("", nil),
		byName:  make(map[string]*Target),
		project: newConfigurationSet(),
	}
}

func newGroup(name string, parent *Group) *Group {
	return &Group{
		name:    name,
		parent:  parent,
		byName:  make(map[string]*Group),
		fileIdx: make(map[string]*FileReference),
	}
}

// Root returns the root group.
func (s *Store) Root() *Group { return s.root }

// ProjectConfigurations returns the project-scope configuration set.
func (s *Store) ProjectConfigurations() *ConfigurationSet { return s.project }

// splitPath splits a slash-separated path and rejects empty segments.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("path %q contains an empty segment", path)
		}
	}
	return segments, nil
}

// FindOrCreateGroup walks the slash-separated path from the root, creating
// any missing groups along the way. An empty path returns the root.
func (s *Store) FindOrCreateGroup(path string) (*Group, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	g := s.root
	for _, seg := range segments {
		child := g.byName[seg]
		if child == nil {
			// A file reference with this name blocks a same-named subgroup
			// from being addressable, so refuse to shadow it.
			if g.fileIdx[seg] != nil {
				return nil, fmt.Errorf("group segment %q collides with a file in %q: %w", seg, g.Path(), ErrDuplicateEntry)
			}
			child = newGroup(seg, g)
			g.children = append(g.children, child)
			g.byName[seg] = child
		}
		g = child
	}
	return g, nil
}

// AddFile creates a file reference with the given leaf name directly under
// group. It fails with ErrDuplicateEntry if the group already holds a file
// with that name, and with ErrInvalidKind for an unrecognized kind.
func (s *Store) AddFile(group *Group, name string, kind Kind) (*FileReference, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid file name %q", name)
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrInvalidKind)
	}
	if group.fileIdx[name] != nil {
		return nil, fmt.Errorf("file %q already exists in group %q: %w", name, group.Path(), ErrDuplicateEntry)
	}
	if group.byName[name] != nil {
		return nil, fmt.Errorf("file %q collides with a subgroup of %q: %w", name, group.Path(), ErrDuplicateEntry)
	}

	ref := &FileReference{name: name, kind: kind, group: group}
	group.files = append(group.files, ref)
	group.fileIdx[name] = ref
	return ref, nil
}

// RemoveFile removes ref from its owning group and cascades: every target
// drops the reference from all build phases, and any target whose product
// it was loses its product. The reference never dangles.
func (s *Store) RemoveFile(ref *FileReference) error {
	if ref.group == nil {
		return fmt.Errorf("file %q is not in the manifest: %w", ref.name, ErrNotFound)
	}

	for _, t := range s.targets {
		t.detach(ref)
		if t.product == ref {
			t.product = nil
		}
	}

	ref.group.removeFile(ref)
	ref.group = nil
	return nil
}

// MoveFile reparents ref into dst. Build-phase memberships survive the
// move because targets reference the same identity before and after.
// Moving a file onto its current group is a no-op.
func (s *Store) MoveFile(ref *FileReference, dst *Group) error {
	if ref.group == nil {
		return fmt.Errorf("file %q is not in the manifest: %w", ref.name, ErrNotFound)
	}
	if ref.group == dst {
		return nil
	}
	if dst.fileIdx[ref.name] != nil {
		return fmt.Errorf("file %q already exists in group %q: %w", ref.name, dst.Path(), ErrDuplicateEntry)
	}
	if dst.byName[ref.name] != nil {
		return fmt.Errorf("file %q collides with a subgroup of %q: %w", ref.name, dst.Path(), ErrDuplicateEntry)
	}

	ref.group.removeFile(ref)
	dst.files = append(dst.files, ref)
	dst.fileIdx[ref.name] = ref
	ref.group = dst
	return nil
}

// RemoveGroup removes g and its whole subtree, cascading file removal
// through RemoveFile so build-phase memberships are cleaned up. The root
// group cannot be removed.
func (s *Store) RemoveGroup(g *Group) error {
	if g.parent == nil {
		return fmt.Errorf("cannot remove the root group")
	}

	for len(g.children) > 0 {
		if err := s.RemoveGroup(g.children[0]); err != nil {
			return err
		}
	}
	for len(g.files) > 0 {
		if err := s.RemoveFile(g.files[0]); err != nil {
			return err
		}
	}

	parent := g.parent
	for i, child := range parent.children {
		if child == g {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	delete(parent.byName, g.name)
	g.parent = nil
	return nil
}

func (g *Group) removeFile(ref *FileReference) {
	for i, f := range g.files {
		if f == ref {
			g.files = append(g.files[:i], g.files[i+1:]...)
			break
		}
	}
	delete(g.fileIdx, ref.name)
}

// AddTarget creates a named build unit. It fails with ErrDuplicateEntry if
// a target with that name already exists.
func (s *Store) AddTarget(name string) (*Target, error) {
	if name == "" {
		return nil, fmt.Errorf("target name must not be empty")
	}
	if s.byName[name] != nil {
		return nil, fmt.Errorf("target %q already exists: %w", name, ErrDuplicateEntry)
	}

	t := &Target{name: name, configs: newConfigurationSet()}
	s.targets = append(s.targets, t)
	s.byName[name] = t
	return t, nil
}

// Target looks up a target by name, failing with ErrUnknownTarget.
func (s *Store) Target(name string) (*Target, error) {
	t := s.byName[name]
	if t == nil {
		return nil, fmt.Errorf("target %q: %w", name, ErrUnknownTarget)
	}
	return t, nil
}

// Targets returns all targets in creation order.
func (s *Store) Targets() []*Target { return s.targets }

// Schemes returns all schemes in creation order.
func (s *Store) Schemes() []*Scheme { return s.schemes }

// Scheme returns the scheme with the given name, or nil.
func (s *Store) Scheme(name string) *Scheme {
	for _, sc := range s.schemes {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}
