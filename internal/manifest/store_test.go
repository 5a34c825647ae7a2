package manifest

import (
	"errors"
	"testing"
)

func TestFindOrCreateGroup_CreatesMissingSegments(t *testing.T) {
	s := NewStore()

	g, err := s.FindOrCreateGroup("App/Views/Detail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name() != "Detail" {
		t.Errorf("expected group name Detail, got %q", g.Name())
	}
	if g.Path() != "App/Views/Detail" {
		t.Errorf("expected path App/Views/Detail, got %q", g.Path())
	}

	// A second call finds the same node instead of creating a sibling.
	again, err := s.FindOrCreateGroup("App/Views/Detail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != g {
		t.Error("expected FindOrCreateGroup to return the existing group")
	}
	if len(s.Root().Groups()) != 1 {
		t.Errorf("expected 1 top-level group, got %d", len(s.Root().Groups()))
	}
}

func TestFindOrCreateGroup_EmptyPathIsRoot(t *testing.T) {
	s := NewStore()
	g, err := s.FindOrCreateGroup("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != s.Root() {
		t.Error("expected the root group")
	}
}

func TestFindOrCreateGroup_RejectsEmptySegment(t *testing.T) {
	s := NewStore()
	if _, err := s.FindOrCreateGroup("App//Views"); err == nil {
		t.Fatal("expected error for empty segment")
	}
}

func TestAddFile_DuplicateLeafFails(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("App")

	if _, err := s.AddFile(g, "Main.src", KindSource); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := s.AddFile(g, "Main.src", KindSource)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestAddFile_SameLeafUnderDifferentGroupSucceeds(t *testing.T) {
	s := NewStore()
	a, _ := s.FindOrCreateGroup("App")
	b, _ := s.FindOrCreateGroup("Tests")

	if _, err := s.AddFile(a, "Main.src", KindSource); err != nil {
		t.Fatalf("add under App: %v", err)
	}
	if _, err := s.AddFile(b, "Main.src", KindSource); err != nil {
		t.Fatalf("add under Tests: %v", err)
	}
}

func TestAddFile_RejectsInvalidKind(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("App")

	_, err := s.AddFile(g, "Main.src", Kind("plugin"))
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestRemoveFile_CascadesIntoBuildPhases(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("App")
	ref, _ := s.AddFile(g, "Main.src", KindSource)
	tgt, _ := s.AddTarget("App")
	if err := tgt.Attach(ref, "sources"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := s.RemoveFile(ref); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if p := tgt.Phase("sources"); p != nil && p.Contains(ref) {
		t.Error("expected reference to be dropped from the sources phase")
	}
	if _, err := s.Resolve("App/Main.src"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound resolving removed file, got %v", err)
	}
}

func TestRemoveFile_ClearsProduct(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("Products")
	ref, _ := s.AddFile(g, "App.out", KindProduct)
	tgt, _ := s.AddTarget("App")
	if err := tgt.SetProduct(ref); err != nil {
		t.Fatalf("set product: %v", err)
	}

	if err := s.RemoveFile(ref); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if tgt.Product() != nil {
		t.Error("expected product to be cleared after removal")
	}
}

func TestRemoveFile_TwiceFails(t *testing.T) {
	s := NewStore()
	g, _ := s.FindOrCreateGroup("App")
	ref, _ := s.AddFile(g, "Main.src", KindSource)

	if err := s.RemoveFile(ref); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := s.RemoveFile(ref); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestMoveFile_PreservesBuildPhaseMembership(t *testing.T) {
	s := NewStore()
	app, _ := s.FindOrCreateGroup("App")
	other, _ := s.FindOrCreateGroup("Shared")
	ref, _ := s.AddFile(app, "Main.src", KindSource)
	tgt, _ := s.AddTarget("App")
	if err := tgt.Attach(ref, "sources"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := s.MoveFile(ref, other); err != nil {
		t.Fatalf("move: %v", err)
	}

	if p := tgt.Phase("sources"); p == nil || !p.Contains(ref) {
		t.Error("expected the sources phase to still contain the moved file")
	}
	if app.File("Main.src") != nil {
		t.Error("expected App to no longer list the file")
	}
	if other.File("Main.src") != ref {
		t.Error("expected Shared to list the file")
	}
	if ref.Path() != "Shared/Main.src" {
		t.Errorf("expected path Shared/Main.src, got %q", ref.Path())
	}
}

func TestMoveFile_DuplicateInDestinationFails(t *testing.T) {
	s := NewStore()
	app, _ := s.FindOrCreateGroup("App")
	other, _ := s.FindOrCreateGroup("Shared")
	ref, _ := s.AddFile(app, "Main.src", KindSource)
	s.AddFile(other, "Main.src", KindSource)

	err := s.MoveFile(ref, other)
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	// The failed move must not have touched the original.
	if app.File("Main.src") != ref {
		t.Error("expected the file to remain under App after a failed move")
	}
}

func TestMoveFile_OntoOwnGroupIsNoop(t *testing.T) {
	s := NewStore()
	app, _ := s.FindOrCreateGroup("App")
	ref, _ := s.AddFile(app, "Main.src", KindSource)

	if err := s.MoveFile(ref, app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(app.Files()) != 1 {
		t.Errorf("expected 1 file, got %d", len(app.Files()))
	}
}

func TestRemoveGroup_CascadesToFilesAndSubgroups(t *testing.T) {
	s := NewStore()
	app, _ := s.FindOrCreateGroup("App")
	views, _ := s.FindOrCreateGroup("App/Views")
	ref, _ := s.AddFile(views, "List.src", KindSource)
	tgt, _ := s.AddTarget("App")
	if err := tgt.Attach(ref, "sources"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := s.RemoveGroup(app); err != nil {
		t.Fatalf("remove group: %v", err)
	}

	if _, err := s.ResolveGroup("App"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for removed group, got %v", err)
	}
	if p := tgt.Phase("sources"); p != nil && len(p.Files()) != 0 {
		t.Error("expected build phase to be emptied by the group removal")
	}
}

func TestRemoveGroup_RootFails(t *testing.T) {
	s := NewStore()
	if err := s.RemoveGroup(s.Root()); err == nil {
		t.Fatal("expected error removing the root group")
	}
}

func TestAddTarget_DuplicateFails(t *testing.T) {
	s := NewStore()
	if _, err := s.AddTarget("App"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := s.AddTarget("App"); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatal("expected ErrDuplicateEntry for duplicate target")
	}
}

func TestTarget_UnknownFails(t *testing.T) {
	s := NewStore()
	if _, err := s.Target("Ghost"); !errors.Is(err, ErrUnknownTarget) {
		t.Fatal("expected ErrUnknownTarget")
	}
}

// The end-to-end scenario: create a group, add a file, attach it to a
// target, then move it. The target keeps the membership while the tree
// reflects the new location.
func TestScenario_MoveKeepsTargetMembership(t *testing.T) {
	s := NewStore()
	app, err := s.FindOrCreateGroup("App")
	if err != nil {
		t.Fatalf("FindOrCreateGroup: %v", err)
	}
	ref, err := s.AddFile(app, "Main.src", KindSource)
	if err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	tgt, err := s.AddTarget("T")
	if err != nil {
		t.Fatalf("AddTarget: %v", err)
	}
	if err := tgt.Attach(ref, "sources"); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	other, err := s.FindOrCreateGroup("OtherGroup")
	if err != nil {
		t.Fatalf("FindOrCreateGroup: %v", err)
	}

	if err := s.MoveFile(ref, other); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}

	if p := tgt.Phase("sources"); p == nil || !p.Contains(ref) {
		t.Error("expected T's sources phase to still contain Main.src")
	}
	if app.File("Main.src") != nil {
		t.Error("expected App to no longer list Main.src")
	}
	if other.File("Main.src") == nil {
		t.Error("expected OtherGroup to list Main.src")
	}
}
