package model

import "fmt"

// Mutation methods. Every method deep-copies the receiver and returns the
// modified copy; the receiver is never touched. Unless noted, an operation
// referencing a nonexistent name returns the model unchanged so that
// idempotent command sequences ("ensure field X is in group Y") can be
// re-run without error handling. UpdateFieldSettings and SetFieldWidget are
// the exceptions; see their comments.

// MoveFieldToGroup removes the field from whichever group currently contains
// it and, when target is non-empty, appends it to the target group's
// children. Target "" moves the field to root. Weight is left alone; callers
// reorder separately. No-op when the field or a named target group is
// missing, or when the field is already a direct child of the target.
func (m Model) MoveFieldToGroup(fieldName, targetGroup string) Model {
	if !m.HasField(fieldName) {
		return m
	}
	if targetGroup != "" && !m.HasGroup(targetGroup) {
		return m
	}
	if m.ContainerOf(fieldName) == targetGroup {
		return m
	}

	out := m.Clone()
	out.removeFromAllChildren(fieldName)
	if targetGroup != "" {
		target := out.Group(targetGroup)
		target.Children = append(target.Children, fieldName)
	}
	return out
}

// MoveGroupToParent re-parents a group, keeping the children list and the
// Parent back-reference in sync. Target "" promotes the group to root.
// Moving a group into itself or one of its own descendants fails with
// ErrCycle and leaves the model unchanged. No-op when the group or a named
// target is missing, or when the group is already a child of the target.
func (m Model) MoveGroupToParent(groupName, targetParent string) (Model, error) {
	if !m.HasGroup(groupName) {
		return m, nil
	}
	if targetParent != "" && !m.HasGroup(targetParent) {
		return m, nil
	}
	group := m.Group(groupName)
	if group.Parent == targetParent {
		return m, nil
	}
	if targetParent != "" && m.wouldCycle(groupName, targetParent) {
		return m, fmt.Errorf("move group %q under %q: %w", groupName, targetParent, ErrCycle)
	}

	out := m.Clone()
	out.removeFromAllChildren(groupName)
	moved := out.Group(groupName)
	moved.Parent = targetParent
	if targetParent != "" {
		target := out.Group(targetParent)
		target.Children = append(target.Children, groupName)
	}
	return out, nil
}

// wouldCycle reports whether target equals group or sits anywhere below it.
// The ancestor walk is bounded by the group count so a pre-existing corrupt
// parent chain cannot loop.
func (m Model) wouldCycle(groupName, target string) bool {
	current := target
	for steps := 0; current != "" && steps <= len(m.Groups); steps++ {
		if current == groupName {
			return true
		}
		ancestor := m.Group(current)
		if ancestor == nil {
			return false
		}
		current = ancestor.Parent
	}
	return false
}

// ReorderChildren rewrites sibling order within a scope. Scope "" is root:
// every root-level group or field named in order gets its index as its new
// weight, and items not named keep their weight (a partial reorder is
// legal). A named scope replaces that group's children array with order
// verbatim, then assigns sequential weights starting at 0 to the entries
// that resolve to an existing field or group, keeping the children array and
// the weight order in agreement. Entries resolving to neither are accepted
// into children as opaque references, matching the permissive parse. No-op
// when a named scope does not exist.
func (m Model) ReorderChildren(scope string, order []string) Model {
	if scope == "" {
		return m.reorderRoot(order)
	}
	if !m.HasGroup(scope) {
		return m
	}

	out := m.Clone()
	group := out.Group(scope)
	group.Children = append([]string(nil), order...)

	weight := 0
	for _, name := range order {
		if g := out.Group(name); g != nil {
			g.Weight = weight
			weight++
			continue
		}
		if f := out.Field(name); f != nil {
			f.Weight = weight
			weight++
		}
	}
	return out
}

func (m Model) reorderRoot(order []string) Model {
	out := m.Clone()
	contained := make(map[string]struct{})
	for _, g := range out.Groups {
		for _, child := range g.Children {
			contained[child] = struct{}{}
		}
	}

	for index, name := range order {
		if g := out.Group(name); g != nil && g.Parent == "" {
			g.Weight = index
			continue
		}
		if f := out.Field(name); f != nil {
			if _, inGroup := contained[name]; !inGroup {
				f.Weight = index
			}
		}
	}
	return out
}

// AddGroup appends a new group with empty children. An empty Name is derived
// from the label (group_ prefix plus machine name). When Parent is non-empty
// the new name is also appended to the parent's children so both directions
// of the relation stay consistent. No-op when the name is already taken,
// when no usable name can be derived, or when a named parent is missing.
func (m Model) AddGroup(group Group) Model {
	name := group.Name
	if name == "" {
		name = GroupName(group.Label)
	}
	if name == "" || m.HasGroup(name) {
		return m
	}
	if group.Parent != "" && !m.HasGroup(group.Parent) {
		return m
	}

	out := m.Clone()
	added := Group{
		Name:     name,
		Label:    group.Label,
		Children: []string{},
		Parent:   group.Parent,
		Weight:   group.Weight,
		Region:   group.Region,
		Format:   group.Format,
		Settings: cloneAnyMap(group.Settings),
	}
	if added.Region == "" {
		added.Region = DefaultRegion
	}
	if added.Format == "" {
		added.Format = FormatFieldset
	}
	if added.Settings == nil {
		added.Settings = map[string]any{}
	}

	out.Groups = append(out.Groups, added)
	if added.Parent != "" {
		parent := out.Group(added.Parent)
		parent.Children = append(parent.Children, name)
	}
	return out
}

// DeleteGroup removes the named group and re-parents its children. With
// moveChildrenToParent true and a parented group, each child moves to the
// grandparent: appended to its children, and child groups get their Parent
// rewritten. Otherwise children are promoted to root: child groups get
// Parent "", child fields simply stop appearing in any children list. The
// deleted name is also scrubbed from its former parent's children. No-op
// when the group does not exist.
func (m Model) DeleteGroup(groupName string, moveChildrenToParent bool) Model {
	group := m.Group(groupName)
	if group == nil {
		return m
	}

	out := m.Clone()
	children := append([]string(nil), out.Group(groupName).Children...)
	grandparent := out.Group(groupName).Parent

	out.removeFromAllChildren(groupName)
	out.removeGroupRecord(groupName)

	adoptive := ""
	if moveChildrenToParent && grandparent != "" {
		adoptive = grandparent
	}

	for _, child := range children {
		if childGroup := out.Group(child); childGroup != nil {
			childGroup.Parent = adoptive
		}
		if adoptive != "" {
			target := out.Group(adoptive)
			target.Children = append(target.Children, child)
		}
	}
	return out
}

// GroupPatch describes a partial group update. Zero-valued string fields
// leave the current value alone; Weight uses a pointer so zero is an
// assignable weight. Settings entries merge onto the existing map key by
// key instead of replacing it.
type GroupPatch struct {
	Label    string
	Format   Format
	Region   string
	Weight   *int
	Settings map[string]any
}

// UpdateGroup shallow-merges a patch onto the named group. No-op when the
// group does not exist.
func (m Model) UpdateGroup(groupName string, patch GroupPatch) Model {
	if !m.HasGroup(groupName) {
		return m
	}

	out := m.Clone()
	group := out.Group(groupName)
	if patch.Label != "" {
		group.Label = patch.Label
	}
	if patch.Format != "" {
		group.Format = patch.Format
	}
	if patch.Region != "" {
		group.Region = patch.Region
	}
	if patch.Weight != nil {
		group.Weight = *patch.Weight
	}
	if len(patch.Settings) > 0 {
		if group.Settings == nil {
			group.Settings = map[string]any{}
		}
		for key, value := range patch.Settings {
			group.Settings[key] = cloneAnyValue(value)
		}
	}
	return out
}

// ToggleFieldVisibility flips the field's membership in the hidden set. The
// flip is unconditional: no existence check runs against the field list, so
// toggling twice always restores the original set.
func (m Model) ToggleFieldVisibility(fieldName string) Model {
	out := m.Clone()
	if out.Hidden == nil {
		out.Hidden = NewHiddenSet()
	}
	if out.Hidden.Has(fieldName) {
		delete(out.Hidden, fieldName)
	} else {
		out.Hidden[fieldName] = struct{}{}
	}
	return out
}

// UpdateFieldSettings merges a patch onto the named field's widget settings.
// Unlike the structural operations this fails with ErrFieldNotFound when the
// field has no record.
func (m Model) UpdateFieldSettings(fieldName string, patch map[string]any) (Model, error) {
	if !m.HasField(fieldName) {
		return m, fmt.Errorf("update settings for %q: %w", fieldName, ErrFieldNotFound)
	}

	out := m.Clone()
	field := out.Field(fieldName)
	if field.Settings == nil {
		field.Settings = map[string]any{}
	}
	for key, value := range patch {
		field.Settings[key] = cloneAnyValue(value)
	}
	return out, nil
}

// SetFieldWidget swaps the widget rendering the named field. Existing widget
// settings are kept as-is; consulting the widget catalog for compatibility
// is the caller's job. Same not-found semantics as UpdateFieldSettings.
func (m Model) SetFieldWidget(fieldName, widget string) (Model, error) {
	if !m.HasField(fieldName) {
		return m, fmt.Errorf("set widget for %q: %w", fieldName, ErrFieldNotFound)
	}

	out := m.Clone()
	out.Field(fieldName).Widget = widget
	return out, nil
}

// ClearGroups drops every group, keeping fields and the hidden set. Used
// when a caller wants to discard the visual arrangement but keep the field
// assignments.
func (m Model) ClearGroups() Model {
	out := m.Clone()
	out.Groups = nil
	return out
}

func (m *Model) removeFromAllChildren(name string) {
	for i := range m.Groups {
		children := m.Groups[i].Children[:0]
		for _, child := range m.Groups[i].Children {
			if child != name {
				children = append(children, child)
			}
		}
		m.Groups[i].Children = children
	}
}

func (m *Model) removeGroupRecord(name string) {
	for i := range m.Groups {
		if m.Groups[i].Name == name {
			m.Groups = append(m.Groups[:i], m.Groups[i+1:]...)
			return
		}
	}
}
