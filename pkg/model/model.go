package model

import (
	internalmodel "github.com/goliatone/go-formdisplay/internal/model"

	"github.com/goliatone/go-formdisplay/pkg/display"
)

// Model is the in-memory, name-addressable form display representation.
type Model = internalmodel.Model

// Group is a named container node (tab, panel, fieldset).
type Group = internalmodel.Group

// GroupPatch describes a partial group update for Model.UpdateGroup.
type GroupPatch = internalmodel.GroupPatch

// Field is a leaf node: one placed, widget-configured content field.
type Field = internalmodel.Field

// HiddenSet holds field names excluded from the visible arrangement.
type HiddenSet = internalmodel.HiddenSet

// Tree is the derived hierarchical view of a model.
type Tree = internalmodel.Tree

// Node is one entry in the tree: a group or a field leaf.
type Node = internalmodel.Node

// NodeKind tags tree nodes.
type NodeKind = internalmodel.NodeKind

// Format enumerates group display styles.
type Format = internalmodel.Format

const (
	NodeKindGroup = internalmodel.NodeKindGroup
	NodeKindField = internalmodel.NodeKindField

	FormatTabs           = internalmodel.FormatTabs
	FormatTab            = internalmodel.FormatTab
	FormatDetails        = internalmodel.FormatDetails
	FormatDetailsSidebar = internalmodel.FormatDetailsSidebar
	FormatFieldset       = internalmodel.FormatFieldset

	DefaultRegion   = internalmodel.DefaultRegion
	DefaultMode     = internalmodel.DefaultMode
	GroupNamePrefix = internalmodel.GroupNamePrefix
)

var (
	// ErrMissingTarget reports a document without entity type or bundle.
	ErrMissingTarget = internalmodel.ErrMissingTarget
	// ErrFieldNotFound reports a settings-class write against a missing field.
	ErrFieldNotFound = internalmodel.ErrFieldNotFound
	// ErrCycle reports a group move that would nest a group inside itself.
	ErrCycle = internalmodel.ErrCycle
)

// NewHiddenSet builds a hidden set from the given names.
func NewHiddenSet(names ...string) HiddenSet {
	return internalmodel.NewHiddenSet(names...)
}

// Parse converts a flat display document into a Model. See the package
// documentation for the permissiveness contract.
func Parse(doc display.FormDisplay) (Model, error) {
	return internalmodel.Parse(doc)
}

// Generate serializes a Model back into the flat document shape with derived
// dependencies and format-settings defaults filled in.
func Generate(m Model) display.FormDisplay {
	return internalmodel.Generate(m)
}

// Lint aggregates every structural invariant violation into one error, nil
// when the model is clean.
func Lint(m Model) error {
	return internalmodel.Lint(m)
}

// MachineName converts a display label into a machine-safe identifier.
func MachineName(label string) string {
	return internalmodel.MachineName(label)
}

// GroupName derives a prefixed group name from a label.
func GroupName(label string) string {
	return internalmodel.GroupName(label)
}

// ModuleForWidget returns the module a widget identifier requires, if any.
func ModuleForWidget(widget string) (string, bool) {
	return internalmodel.ModuleForWidget(widget)
}
