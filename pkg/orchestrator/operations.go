package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-formdisplay/pkg/model"
)

// Operation is a named, reusable model transformation. The name surfaces in
// error messages so a failing step in a scripted sequence is identifiable.
type Operation struct {
	Name string
	Func func(model.Model) (model.Model, error)
}

func (op Operation) apply(m model.Model) (model.Model, error) {
	if op.Func == nil {
		return m, nil
	}
	out, err := op.Func(m)
	if err != nil {
		return model.Model{}, fmt.Errorf("orchestrator: operation %q: %w", op.Name, err)
	}
	return out, nil
}

// MoveField moves a field into a group, or to root when group is empty.
func MoveField(field, group string) Operation {
	return Operation{
		Name: fmt.Sprintf("move field %s to %q", field, group),
		Func: func(m model.Model) (model.Model, error) {
			return m.MoveFieldToGroup(field, group), nil
		},
	}
}

// MoveGroup re-parents a group, or promotes it to root when parent is empty.
func MoveGroup(group, parent string) Operation {
	return Operation{
		Name: fmt.Sprintf("move group %s under %q", group, parent),
		Func: func(m model.Model) (model.Model, error) {
			return m.MoveGroupToParent(group, parent)
		},
	}
}

// Reorder rewrites sibling order within a scope; empty scope is root.
func Reorder(scope string, order ...string) Operation {
	return Operation{
		Name: fmt.Sprintf("reorder %q", scope),
		Func: func(m model.Model) (model.Model, error) {
			return m.ReorderChildren(scope, order), nil
		},
	}
}

// CreateGroup appends a new group.
func CreateGroup(group model.Group) Operation {
	name := group.Name
	if name == "" {
		name = group.Label
	}
	return Operation{
		Name: fmt.Sprintf("create group %s", name),
		Func: func(m model.Model) (model.Model, error) {
			return m.AddGroup(group), nil
		},
	}
}

// DeleteGroup removes a group, optionally moving its children to the
// grandparent.
func DeleteGroup(group string, moveChildrenToParent bool) Operation {
	return Operation{
		Name: fmt.Sprintf("delete group %s", group),
		Func: func(m model.Model) (model.Model, error) {
			return m.DeleteGroup(group, moveChildrenToParent), nil
		},
	}
}

// UpdateGroup merges a patch onto a group.
func UpdateGroup(group string, patch model.GroupPatch) Operation {
	return Operation{
		Name: fmt.Sprintf("update group %s", group),
		Func: func(m model.Model) (model.Model, error) {
			return m.UpdateGroup(group, patch), nil
		},
	}
}

// ToggleVisibility flips a field in or out of the hidden set.
func ToggleVisibility(field string) Operation {
	return Operation{
		Name: fmt.Sprintf("toggle visibility of %s", field),
		Func: func(m model.Model) (model.Model, error) {
			return m.ToggleFieldVisibility(field), nil
		},
	}
}

// SetWidget swaps the widget rendering a field.
func SetWidget(field, widget string) Operation {
	return Operation{
		Name: fmt.Sprintf("set widget of %s to %s", field, widget),
		Func: func(m model.Model) (model.Model, error) {
			return m.SetFieldWidget(field, widget)
		},
	}
}

// UpdateWidgetSettings merges a patch onto a field's widget settings.
func UpdateWidgetSettings(field string, patch map[string]any) Operation {
	return Operation{
		Name: fmt.Sprintf("update settings of %s", field),
		Func: func(m model.Model) (model.Model, error) {
			return m.UpdateFieldSettings(field, patch)
		},
	}
}

// ClearGroups drops every group, keeping fields and the hidden set.
func ClearGroups() Operation {
	return Operation{
		Name: "clear groups",
		Func: func(m model.Model) (model.Model, error) {
			return m.ClearGroups(), nil
		},
	}
}
