package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/manifold-tools/manifold/internal/manifest"
)

const manifestFile = "manifold.yaml"

// ManifestPath returns the full path to manifold.yaml for a project directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, manifestFile)
}

// Exists reports whether the project directory has a manifest.
func Exists(dir string) bool {
	_, err := os.Stat(ManifestPath(dir))
	return err == nil
}

// Init writes an empty manifest into the project directory. It fails if
// one already exists.
func Init(dir string) error {
	path := ManifestPath(dir)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("manifest already exists at %s", path)
	}
	return Save(dir, manifest.NewStore())
}

// Load reads, validates, and decodes the project's manifest into a Store.
// The raw document is checked against the embedded JSON Schema and the
// format-version gate before any model objects are built.
func Load(dir string) (*manifest.Store, error) {
	path := ManifestPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s is invalid: %s", path, result.Issues[0])
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := CheckFormatVersion(doc.FormatVersion); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	store, err := decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return store, nil
}

// Save serializes the store and writes it atomically: the document goes to
// a temp file in the same directory first, then replaces manifold.yaml by
// rename. A failed persist never truncates the existing manifest.
func Save(dir string, store *manifest.Store) error {
	doc := encode(store)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	path := ManifestPath(dir)
	tmp, err := os.CreateTemp(dir, manifestFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp manifest: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp manifest: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing manifest: %w", err)
	}
	return nil
}

// decode rebuilds a Store from a document using the store's own mutation
// operations, so a document that violates an invariant (duplicate leaf,
// phase entry pointing nowhere, scheme bound to a missing target) is
// rejected instead of producing an inconsistent model.
func decode(doc *Document) (*manifest.Store, error) {
	s := manifest.NewStore()

	for _, g := range doc.Groups {
		if err := decodeGroup(s, "", g); err != nil {
			return nil, err
		}
	}
	for _, f := range doc.Files {
		if _, err := s.AddFile(s.Root(), f.Name, manifest.Kind(f.Kind)); err != nil {
			return nil, err
		}
	}

	for _, cfg := range doc.Configurations {
		s.ProjectConfigurations().Config(cfg.Name).ApplyAll(cfg.Settings)
	}

	for _, td := range doc.Targets {
		t, err := s.AddTarget(td.Name)
		if err != nil {
			return nil, err
		}

		for _, cfg := range td.Configurations {
			t.Configurations().Config(cfg.Name).ApplyAll(cfg.Settings)
		}

		for _, ph := range td.Phases {
			for _, path := range ph.Files {
				ref, err := s.Resolve(path)
				if err != nil {
					return nil, fmt.Errorf("target %q, phase %q: %w", td.Name, ph.Kind, err)
				}
				if err := t.Attach(ref, ph.Kind); err != nil {
					return nil, fmt.Errorf("target %q, phase %q: %w", td.Name, ph.Kind, err)
				}
			}
		}

		if td.Product != "" {
			ref, err := s.Resolve(td.Product)
			if err != nil {
				return nil, fmt.Errorf("target %q product: %w", td.Name, err)
			}
			if err := t.SetProduct(ref); err != nil {
				return nil, fmt.Errorf("target %q product: %w", td.Name, err)
			}
		}
	}

	for _, sd := range doc.Schemes {
		if _, err := s.GenerateScheme(sd.Name, sd.Target, sd.Shared); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func decodeGroup(s *manifest.Store, parentPath string, doc GroupDoc) error {
	path := doc.Name
	if parentPath != "" {
		path = parentPath + "/" + doc.Name
	}

	g, err := s.FindOrCreateGroup(path)
	if err != nil {
		return err
	}

	for _, f := range doc.Files {
		if _, err := s.AddFile(g, f.Name, manifest.Kind(f.Kind)); err != nil {
			return err
		}
	}
	for _, child := range doc.Groups {
		if err := decodeGroup(s, path, child); err != nil {
			return err
		}
	}
	return nil
}

func encode(store *manifest.Store) *Document {
	doc := &Document{FormatVersion: FormatVersion}

	for _, g := range store.Root().Groups() {
		doc.Groups = append(doc.Groups, encodeGroup(g))
	}
	for _, f := range store.Root().Files() {
		doc.Files = append(doc.Files, FileDoc{Name: f.Name(), Kind: string(f.Kind())})
	}

	doc.Configurations = encodeConfigs(store.ProjectConfigurations())

	for _, t := range store.Targets() {
		td := TargetDoc{
			Name:           t.Name(),
			Configurations: encodeConfigs(t.Configurations()),
		}
		if t.Product() != nil {
			td.Product = t.Product().Path()
		}
		for _, p := range t.Phases() {
			pd := PhaseDoc{Kind: p.Kind()}
			for _, ref := range p.Files() {
				pd.Files = append(pd.Files, ref.Path())
			}
			td.Phases = append(td.Phases, pd)
		}
		doc.Targets = append(doc.Targets, td)
	}

	for _, sc := range store.Schemes() {
		doc.Schemes = append(doc.Schemes, SchemeDoc{
			Name:   sc.Name,
			Target: sc.Target,
			Shared: sc.Shared,
		})
	}

	return doc
}

func encodeGroup(g *manifest.Group) GroupDoc {
	doc := GroupDoc{Name: g.Name()}
	for _, child := range g.Groups() {
		doc.Groups = append(doc.Groups, encodeGroup(child))
	}
	for _, f := range g.Files() {
		doc.Files = append(doc.Files, FileDoc{Name: f.Name(), Kind: string(f.Kind())})
	}
	return doc
}

func encodeConfigs(set *manifest.ConfigurationSet) []ConfigDoc {
	var docs []ConfigDoc
	for _, cfg := range set.All() {
		cd := ConfigDoc{Name: cfg.Name(), Settings: make(map[string]string, cfg.Len())}
		for _, k := range cfg.Keys() {
			v, _ := cfg.Get(k)
			cd.Settings[k] = v
		}
		docs = append(docs, cd)
	}
	return docs
}
