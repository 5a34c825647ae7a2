package manifest

import (
	"strings"
	"testing"
)

func TestCheck_CleanManifest(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("App")
	ref, _ := s.AddFile(g, "Main.src", KindSource)
	tgt, _ := s.AddTarget("App")
	tgt.Attach(ref, "sources")
	s.GenerateScheme("Run", "App", true)

	if issues := s.Check(); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestCheck_DanglingSchemeTarget(t *testing.T) {
	s := NewStore()
	s.AddTarget("App")
	s.GenerateScheme("Run", "App", true)

	// Simulate a hand-edited document binding a missing target.
	s.Scheme("Run").Target = "Ghost"

	issues := s.Check()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Subject != "Run" || !strings.Contains(issues[0].Message, "Ghost") {
		t.Errorf("unexpected issue: %v", issues[0])
	}
}

func TestCheck_ProductKindMismatch(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("Products")
	ref, _ := s.AddFile(g, "App.out", KindNone)
	tgt, _ := s.AddTarget("App")
	if err := tgt.SetProduct(ref); err != nil {
		t.Fatalf("set product: %v", err)
	}

	// Undo the retagging behind the store's back.
	ref.kind = KindSource

	issues := s.Check()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Subject != "App" {
		t.Errorf("unexpected issue subject: %q", issues[0].Subject)
	}
}
