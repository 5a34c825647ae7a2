package manifest

import "fmt"

// Issue describes one consistency violation found by Check.
type Issue struct {
	// Subject is the identifier the issue is about (a path, a target or
	// scheme name).
	Subject string

	// Message is a human-readable description of the violation.
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Subject, i.Message)
}

// Check verifies the cross-cutting invariants of the manifest and returns
// one issue per violation. Store mutations maintain these invariants by
// construction, so Check exists as a diagnostic for manifests assembled
// from external input.
func (s *Store) Check() []Issue {
	var issues []Issue

	reachable := make(map[*FileReference]bool)
	collectRefs(s.root, reachable)

	for _, t := range s.targets {
		for _, p := range t.phases {
			for _, ref := range p.refs {
				if !reachable[ref] {
					issues = append(issues, Issue{
						Subject: t.name,
						Message: fmt.Sprintf("phase %q references %q, which is not in the manifest tree", p.kind, ref.name),
					})
				}
			}
		}
		if t.product != nil {
			if !reachable[t.product] {
				issues = append(issues, Issue{
					Subject: t.name,
					Message: fmt.Sprintf("product %q is not in the manifest tree", t.product.name),
				})
			} else if t.product.kind != KindProduct {
				issues = append(issues, Issue{
					Subject: t.name,
					Message: fmt.Sprintf("product %q is declared %q, expected %q", t.product.Path(), t.product.kind, KindProduct),
				})
			}
		}
	}

	for _, sc := range s.schemes {
		if s.byName[sc.Target] == nil {
			issues = append(issues, Issue{
				Subject: sc.Name,
				Message: fmt.Sprintf("scheme is bound to unknown target %q", sc.Target),
			})
		}
	}

	return issues
}

func collectRefs(g *Group, acc map[*FileReference]bool) {
	for _, ref := range g.files {
		acc[ref] = true
	}
	for _, child := range g.children {
		collectRefs(child, acc)
	}
}
