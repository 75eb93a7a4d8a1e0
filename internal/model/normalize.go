package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Lint checks the structural invariants the mutation methods rely on and
// aggregates every violation into one error. A freshly parsed document may
// legitimately fail here: parsing is permissive by design, and Lint is the
// trust boundary a caller runs once before assuming the invariants hold.
// Returns nil when the model is clean.
func Lint(m Model) error {
	var result *multierror.Error

	groupNames := make(map[string]int, len(m.Groups))
	for _, g := range m.Groups {
		groupNames[g.Name]++
	}
	for name, count := range groupNames {
		if count > 1 {
			result = multierror.Append(result, fmt.Errorf("group %q declared %d times", name, count))
		}
	}

	fieldNames := make(map[string]int, len(m.Fields))
	for _, f := range m.Fields {
		fieldNames[f.Name]++
	}
	for name, count := range fieldNames {
		if count > 1 {
			result = multierror.Append(result, fmt.Errorf("field %q declared %d times", name, count))
		}
	}

	containers := make(map[string][]string)
	for _, g := range m.Groups {
		seen := make(map[string]struct{}, len(g.Children))
		for _, child := range g.Children {
			if _, dup := seen[child]; dup {
				result = multierror.Append(result, fmt.Errorf("group %q lists child %q more than once", g.Name, child))
			}
			seen[child] = struct{}{}
			if !m.HasGroup(child) && !m.HasField(child) {
				result = multierror.Append(result, fmt.Errorf("group %q references unknown child %q", g.Name, child))
				continue
			}
			containers[child] = append(containers[child], g.Name)
		}
	}
	for _, name := range sortedKeys(containers) {
		if held := containers[name]; len(held) > 1 {
			result = multierror.Append(result, fmt.Errorf("%q is contained by %d groups: %v", name, len(held), held))
		}
	}

	for _, g := range m.Groups {
		for _, child := range g.Children {
			childGroup := m.Group(child)
			if childGroup != nil && childGroup.Parent != g.Name {
				result = multierror.Append(result, fmt.Errorf("group %q lists child %q whose parent is %q", g.Name, child, childGroup.Parent))
			}
		}
		if g.Parent == "" {
			continue
		}
		parent := m.Group(g.Parent)
		switch {
		case parent == nil:
			result = multierror.Append(result, fmt.Errorf("group %q names unknown parent %q", g.Name, g.Parent))
		case !parent.Contains(g.Name):
			result = multierror.Append(result, fmt.Errorf("group %q names parent %q which does not list it", g.Name, g.Parent))
		}
	}

	for _, g := range m.Groups {
		if m.onParentCycle(g.Name) {
			result = multierror.Append(result, fmt.Errorf("group %q sits on a parent cycle", g.Name))
		}
	}

	return result.ErrorOrNil()
}

// Normalize is the repair counterpart of Lint: a pure pass that restores the
// invariants on a copy of the model. It performs exactly these repairs, in
// order:
//
//  1. keeps the first record where a group or field name is declared twice
//  2. drops children references that resolve to neither a group nor a field
//  3. dedupes repeated children, keeping the first occurrence; where a name
//     is contained by several groups, the first container in group order wins
//  4. rewrites every group's Parent back-reference from the (authoritative)
//     children lists
//  5. promotes members of any remaining parent cycle to root, removing them
//     from their container's children
//
// Lint after Normalize returns nil.
func (m Model) Normalize() Model {
	out := m.Clone()

	out.Groups = dedupeGroups(out.Groups)
	out.Fields = dedupeFields(out.Fields)

	claimed := make(map[string]string)
	for i := range out.Groups {
		g := &out.Groups[i]
		kept := make([]string, 0, len(g.Children))
		for _, child := range g.Children {
			if !out.HasGroup(child) && !out.HasField(child) {
				continue
			}
			if containsString(kept, child) {
				continue
			}
			if owner, taken := claimed[child]; taken && owner != g.Name {
				continue
			}
			claimed[child] = g.Name
			kept = append(kept, child)
		}
		g.Children = kept
	}

	for i := range out.Groups {
		out.Groups[i].Parent = claimed[out.Groups[i].Name]
	}

	// Collect every cycle member before promoting any: promoting one breaks
	// the chain for the rest, and all of them must reach root.
	var cycled []string
	for i := range out.Groups {
		if out.onParentCycle(out.Groups[i].Name) {
			cycled = append(cycled, out.Groups[i].Name)
		}
	}
	for _, name := range cycled {
		out.Group(name).Parent = ""
		out.removeFromAllChildren(name)
	}

	return out
}

// onParentCycle reports whether following parent links from the group fails
// to reach root within the group count.
func (m Model) onParentCycle(name string) bool {
	current := name
	for steps := 0; steps <= len(m.Groups); steps++ {
		group := m.Group(current)
		if group == nil || group.Parent == "" {
			return false
		}
		current = group.Parent
	}
	return true
}

func dedupeGroups(in []Group) []Group {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]Group, 0, len(in))
	for _, g := range in {
		if _, dup := seen[g.Name]; dup {
			continue
		}
		seen[g.Name] = struct{}{}
		out = append(out, g)
	}
	return out
}

func dedupeFields(in []Field) []Field {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]Field, 0, len(in))
	for _, f := range in {
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		out = append(out, f)
	}
	return out
}

func containsString(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}
