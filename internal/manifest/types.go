package manifest

// Kind classifies a file reference by the role it plays in a target.
type Kind string

const (
	// KindNone means the reference carries no declared kind.
	KindNone Kind = ""

	// KindSource marks a compilable source file.
	KindSource Kind = "source"

	// KindResource marks a bundled resource file.
	KindResource Kind = "resource"

	// KindFramework marks a linked framework or library.
	KindFramework Kind = "framework"

	// KindProduct marks the generated build output of a target.
	KindProduct Kind = "product"
)

// ValidKinds contains all kind values accepted from user input.
var ValidKinds = []Kind{KindSource, KindResource, KindFramework, KindProduct}

// IsValidKind reports whether k is KindNone or one of ValidKinds.
func IsValidKind(k Kind) bool {
	if k == KindNone {
		return true
	}
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

// Group is a named node in the manifest tree. It holds an ordered list of
// child groups and its direct file references, indexed by leaf name so
// uniqueness checks and lookups stay O(1).
type Group struct {
	name     string
	parent   *Group
	children []*Group
	byName   map[string]*Group
	files    []*FileReference
	fileIdx  map[string]*FileReference
}

// Name returns the group's name. The root group's name is empty.
func (g *Group) Name() string { return g.name }

// Parent returns the containing group, or nil for the root.
func (g *Group) Parent() *Group { return g.parent }

// Groups returns the child groups in order.
func (g *Group) Groups() []*Group { return g.children }

// Files returns the direct file references in insertion order.
func (g *Group) Files() []*FileReference { return g.files }

// Group returns the direct child group with the given name, or nil.
func (g *Group) Group(name string) *Group { return g.byName[name] }

// File returns the direct file reference with the given leaf name, or nil.
func (g *Group) File(name string) *FileReference { return g.fileIdx[name] }

// Path returns the slash-joined path from the root to this group.
// The root group's path is empty.
func (g *Group) Path() string {
	if g.parent == nil {
		return ""
	}
	parent := g.parent.Path()
	if parent == "" {
		return g.name
	}
	return parent + "/" + g.name
}

// FileReference identifies one manifest entry. It is owned by exactly one
// group at a time; reparenting happens only through Store.MoveFile.
type FileReference struct {
	name  string
	kind  Kind
	group *Group
}

// Name returns the reference's leaf name.
func (r *FileReference) Name() string { return r.name }

// Kind returns the declared kind, or KindNone.
func (r *FileReference) Kind() Kind { return r.kind }

// Group returns the owning group, or nil once the reference is removed.
func (r *FileReference) Group() *Group { return r.group }

// Path returns the slash-joined path from the root to this reference.
func (r *FileReference) Path() string {
	if r.group == nil {
		return r.name
	}
	parent := r.group.Path()
	if parent == "" {
		return r.name
	}
	return parent + "/" + r.name
}

// BuildPhase is one ordered processing step of a target. Membership is a
// set keyed by reference identity; the slice keeps insertion order for
// stable output.
type BuildPhase struct {
	kind string
	refs []*FileReference
	set  map[*FileReference]bool
}

// Kind returns the phase kind (e.g. "sources", "resources").
func (p *BuildPhase) Kind() string { return p.kind }

// Files returns the phase's file references in insertion order.
func (p *BuildPhase) Files() []*FileReference { return p.refs }

// Contains reports whether ref is a member of this phase.
func (p *BuildPhase) Contains(ref *FileReference) bool { return p.set[ref] }

// Target is a named build unit: an ordered list of build phases, a set of
// target-scope build configurations, and at most one product reference.
type Target struct {
	name    string
	phases  []*BuildPhase
	configs *ConfigurationSet
	product *FileReference
}

// Name returns the target's name.
func (t *Target) Name() string { return t.name }

// Phases returns the target's build phases in order.
func (t *Target) Phases() []*BuildPhase { return t.phases }

// Phase returns the phase with the given kind, or nil.
func (t *Target) Phase(kind string) *BuildPhase {
	for _, p := range t.phases {
		if p.kind == kind {
			return p
		}
	}
	return nil
}

// Product returns the target's product reference, or nil if unset.
func (t *Target) Product() *FileReference { return t.product }

// Configurations returns the target-scope configuration set.
func (t *Target) Configurations() *ConfigurationSet { return t.configs }

// Scheme binds one target as both the build and launch participant. The
// target is held as a weak reference by name; resolution happens at use.
type Scheme struct {
	Name   string
	Target string
	Shared bool
}
