package manifest

import "fmt"

// Attach adds ref to the build phase of the given kind, creating the phase
// at the end of the target's phase list if it does not exist yet.
// Re-attaching an already-attached reference is a no-op, so repeated runs
// of the same mutation converge instead of accumulating duplicates.
func (t *Target) Attach(ref *FileReference, phaseKind string) error {
	if phaseKind == "" {
		return fmt.Errorf("phase kind must not be empty")
	}
	if ref.group == nil {
		return fmt.Errorf("file %q is not in the manifest: %w", ref.name, ErrNotFound)
	}

	p := t.Phase(phaseKind)
	if p == nil {
		p = &BuildPhase{kind: phaseKind, set: make(map[*FileReference]bool)}
		t.phases = append(t.phases, p)
	}
	if p.set[ref] {
		return nil
	}
	p.refs = append(p.refs, ref)
	p.set[ref] = true
	return nil
}

// Detach removes ref from every build phase of the target. Detaching an
// unattached reference is a no-op.
func (t *Target) Detach(ref *FileReference) {
	t.detach(ref)
}

func (t *Target) detach(ref *FileReference) {
	for _, p := range t.phases {
		if !p.set[ref] {
			continue
		}
		for i, r := range p.refs {
			if r == ref {
				p.refs = append(p.refs[:i], p.refs[i+1:]...)
				break
			}
		}
		delete(p.set, ref)
	}
}

// SetProduct makes ref the target's product reference, replacing any
// previous product and retagging ref's kind. It fails with ErrInvalidKind
// if ref already carries a declared kind other than product.
func (t *Target) SetProduct(ref *FileReference) error {
	if ref.group == nil {
		return fmt.Errorf("file %q is not in the manifest: %w", ref.name, ErrNotFound)
	}
	if ref.kind != KindNone && ref.kind != KindProduct {
		return fmt.Errorf("file %q is declared %q, cannot redeclare as product: %w", ref.Path(), ref.kind, ErrInvalidKind)
	}

	ref.kind = KindProduct
	t.product = ref
	return nil
}
