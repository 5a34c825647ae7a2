package project

// FormatVersion is the manifest document version this build reads and
// writes. Documents with a different major version are rejected on load.
const FormatVersion = "1.0.0"

// Document is the YAML shape of manifold.yaml. Files holds references
// living directly under the root group, outside any named group.
type Document struct {
	FormatVersion  string      `yaml:"format_version"`
	Groups         []GroupDoc  `yaml:"groups,omitempty"`
	Files          []FileDoc   `yaml:"files,omitempty"`
	Targets        []TargetDoc `yaml:"targets,omitempty"`
	Configurations []ConfigDoc `yaml:"configurations,omitempty"`
	Schemes        []SchemeDoc `yaml:"schemes,omitempty"`
}

// GroupDoc is one node of the serialized group tree.
type GroupDoc struct {
	Name   string     `yaml:"name"`
	Groups []GroupDoc `yaml:"groups,omitempty"`
	Files  []FileDoc  `yaml:"files,omitempty"`
}

// FileDoc is one serialized file reference.
type FileDoc struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind,omitempty"`
}

// TargetDoc is one serialized target. Phase members and the product are
// full slash-separated paths into the group tree.
type TargetDoc struct {
	Name           string      `yaml:"name"`
	Product        string      `yaml:"product,omitempty"`
	Phases         []PhaseDoc  `yaml:"phases,omitempty"`
	Configurations []ConfigDoc `yaml:"configurations,omitempty"`
}

// PhaseDoc is one serialized build phase.
type PhaseDoc struct {
	Kind  string   `yaml:"kind"`
	Files []string `yaml:"files,omitempty"`
}

// ConfigDoc is one serialized build-configuration scope.
type ConfigDoc struct {
	Name     string            `yaml:"name"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// SchemeDoc is one serialized scheme.
type SchemeDoc struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Shared bool   `yaml:"shared"`
}
