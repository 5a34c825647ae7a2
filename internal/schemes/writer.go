package schemes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/manifold-tools/manifold/internal/manifest"
)

// Directory names under <project>/schemes/.
const (
	SchemesDir = "schemes"
	SharedDir  = "shared"
	LocalDir   = "local"
)

// schemeFile is the on-disk YAML shape of one scheme artifact. The target
// participates in both the build and launch actions.
type schemeFile struct {
	Name   string `yaml:"name"`
	Build  string `yaml:"build"`
	Launch string `yaml:"launch"`
}

// Dir returns the directory a scheme with the given visibility is written to.
func Dir(projectDir string, shared bool) string {
	sub := LocalDir
	if shared {
		sub = SharedDir
	}
	return filepath.Join(projectDir, SchemesDir, sub)
}

// Path returns the artifact path for a scheme.
func Path(projectDir string, sc *manifest.Scheme) string {
	return filepath.Join(Dir(projectDir, sc.Shared), sc.Name+".yaml")
}

// Write persists one scheme artifact, creating the visibility directory as
// needed. Regenerating a scheme under the other visibility removes the
// stale artifact so exactly one file exists per scheme name.
func Write(projectDir string, sc *manifest.Scheme) error {
	dir := Dir(projectDir, sc.Shared)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating schemes directory: %w", err)
	}

	data, err := yaml.Marshal(schemeFile{
		Name:   sc.Name,
		Build:  sc.Target,
		Launch: sc.Target,
	})
	if err != nil {
		return fmt.Errorf("marshaling scheme %q: %w", sc.Name, err)
	}

	path := filepath.Join(dir, sc.Name+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scheme %q: %w", sc.Name, err)
	}

	// Drop the artifact from the other visibility, if any.
	return remove(projectDir, sc.Name, !sc.Shared)
}

// Remove deletes the artifact for a scheme name from both visibility
// directories. Removing a scheme that has no artifact is a no-op.
func Remove(projectDir, name string) error {
	for _, shared := range []bool{true, false} {
		if err := remove(projectDir, name, shared); err != nil {
			return err
		}
	}
	return nil
}

func remove(projectDir, name string, shared bool) error {
	path := filepath.Join(Dir(projectDir, shared), name+".yaml")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing scheme artifact %s: %w", path, err)
	}
	return nil
}

// List returns the scheme names present under either visibility directory,
// sorted by name.
func List(projectDir string) ([]string, error) {
	seen := make(map[string]bool)
	for _, shared := range []bool{true, false} {
		entries, err := os.ReadDir(Dir(projectDir, shared))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading schemes directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), ".yaml")] = true
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
