package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manifold-tools/manifold/internal/manifest"
)

func TestInit_CreatesEmptyManifest(t *testing.T) {
	dir := t.TempDir()

	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("expected manifest to exist after Init")
	}

	store, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(store.Root().Groups()) != 0 || len(store.Targets()) != 0 {
		t.Error("expected an empty manifest")
	}
}

func TestInit_ExistingManifestFails(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("expected second Init to fail")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := manifest.NewStore()
	app, _ := s.FindOrCreateGroup("App/Views")
	list, _ := s.AddFile(app, "List.src", manifest.KindSource)
	products, _ := s.FindOrCreateGroup("Products")
	out, _ := s.AddFile(products, "App.out", manifest.KindNone)

	tgt, _ := s.AddTarget("App")
	if err := tgt.Attach(list, "sources"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := tgt.SetProduct(out); err != nil {
		t.Fatalf("set product: %v", err)
	}
	tgt.Configurations().Config("Debug").Apply("LEVEL", "0")
	s.ProjectConfigurations().Config("Debug").Apply("LEVEL", "2")
	s.ProjectConfigurations().Config("Debug").Apply("NAME", "manifold")
	if _, err := s.GenerateScheme("Run", "App", true); err != nil {
		t.Fatalf("generate scheme: %v", err)
	}

	if err := Save(dir, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ref, err := loaded.Resolve("App/Views/List.src")
	if err != nil {
		t.Fatalf("resolve after load: %v", err)
	}
	lt, err := loaded.Target("App")
	if err != nil {
		t.Fatalf("target after load: %v", err)
	}
	if p := lt.Phase("sources"); p == nil || !p.Contains(ref) {
		t.Error("expected the sources phase membership to survive the round trip")
	}
	if lt.Product() == nil || lt.Product().Path() != "Products/App.out" {
		t.Error("expected the product reference to survive the round trip")
	}
	if lt.Product().Kind() != manifest.KindProduct {
		t.Errorf("expected product kind, got %q", lt.Product().Kind())
	}
	if v, _ := lt.Configurations().Config("Debug").Get("LEVEL"); v != "0" {
		t.Errorf("expected target LEVEL=0, got %q", v)
	}
	if v, _ := loaded.ProjectConfigurations().Config("Debug").Get("NAME"); v != "manifold" {
		t.Errorf("expected project NAME=manifold, got %q", v)
	}
	sc := loaded.Scheme("Run")
	if sc == nil || sc.Target != "App" || !sc.Shared {
		t.Errorf("expected shared scheme Run bound to App, got %+v", sc)
	}
}

func TestSaveLoad_RootLevelFiles(t *testing.T) {
	dir := t.TempDir()

	s := manifest.NewStore()
	ref, err := s.AddFile(s.Root(), "Main.src", manifest.KindSource)
	if err != nil {
		t.Fatalf("add at root: %v", err)
	}
	tgt, _ := s.AddTarget("App")
	if err := tgt.Attach(ref, "sources"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := Save(dir, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := loaded.Resolve("Main.src")
	if err != nil {
		t.Fatalf("resolve after load: %v", err)
	}
	if got.Group() != loaded.Root() {
		t.Error("expected the file to live directly under the root")
	}
	lt, _ := loaded.Target("App")
	if p := lt.Phase("sources"); p == nil || !p.Contains(got) {
		t.Error("expected the phase membership to survive the round trip")
	}
}

func TestSave_IsDeterministic(t *testing.T) {
	dir := t.TempDir()

	s := manifest.NewStore()
	g, _ := s.FindOrCreateGroup("App")
	s.AddFile(g, "B.src", manifest.KindSource)
	s.AddFile(g, "A.src", manifest.KindSource)
	cfg := s.ProjectConfigurations().Config("Debug")
	cfg.Apply("Z", "1")
	cfg.Apply("A", "2")

	if err := Save(dir, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, _ := os.ReadFile(ManifestPath(dir))

	if err := Save(dir, s); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	second, _ := os.ReadFile(ManifestPath(dir))

	if string(first) != string(second) {
		t.Error("expected identical bytes from repeated saves")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, manifest.NewStore()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "manifold.yaml" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected only manifold.yaml, got %v", names)
	}
}

func TestLoad_RejectsDanglingPhaseEntry(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `format_version: "1.0.0"
groups:
  - name: App
    files:
      - name: Main.src
        kind: source
targets:
  - name: App
    phases:
      - kind: sources
        files:
          - App/Gone.src
`)

	_, err := Load(dir)
	if !errors.Is(err, manifest.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dangling phase entry, got %v", err)
	}
}

func TestLoad_RejectsDuplicateLeaf(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `format_version: "1.0.0"
groups:
  - name: App
    files:
      - name: Main.src
      - name: Main.src
`)

	_, err := Load(dir)
	if !errors.Is(err, manifest.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestLoad_RejectsUnknownSchemeTarget(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `format_version: "1.0.0"
schemes:
  - name: Run
    target: Ghost
`)

	_, err := Load(dir)
	if !errors.Is(err, manifest.ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestLoad_RejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `format_version: "1.0.0"
groups:
  - files:
      - name: orphan.src
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestLoad_RejectsFutureMajorVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `format_version: "2.0.0"
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "format_version") {
		t.Fatalf("expected a format-version error, got %v", err)
	}
}

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "manifold.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}
