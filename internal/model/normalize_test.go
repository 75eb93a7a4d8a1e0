package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLint_CleanModel(t *testing.T) {
	if err := Lint(sampleModel()); err != nil {
		t.Fatalf("unexpected lint failures: %v", err)
	}
}

func TestLint_HiddenWithoutRecordIsClean(t *testing.T) {
	// round-tripped documents carry hidden names without field records
	m := sampleModel()
	m.Hidden = NewHiddenSet("field_legacy", "field_never_declared")

	if err := Lint(m); err != nil {
		t.Fatalf("unexpected lint failures: %v", err)
	}
}

func TestLint_ReportsEveryViolation(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"title", "title", "ghost"}, Format: FormatFieldset},
			{Name: "group_b", Children: []string{"title"}, Parent: "group_missing", Format: FormatFieldset},
			{Name: "group_b", Children: []string{}, Format: FormatFieldset},
		},
		Fields: []Field{
			{Name: "title"},
			{Name: "title"},
		},
	}

	err := Lint(m)
	if err == nil {
		t.Fatal("expected lint failures")
	}

	msg := err.Error()
	for _, want := range []string{
		`group "group_b" declared 2 times`,
		`field "title" declared 2 times`,
		`group "group_a" lists child "title" more than once`,
		`group "group_a" references unknown child "ghost"`,
		`"title" is contained by`,
		`group "group_b" names unknown parent "group_missing"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("lint output missing %q\ngot:\n%s", want, msg)
		}
	}
}

func TestLint_ParentChildrenDisagreement(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_outer", Children: []string{"group_inner"}, Format: FormatTabs},
			{Name: "group_inner", Children: []string{}, Parent: "group_other", Format: FormatTab},
			{Name: "group_other", Children: []string{}, Format: FormatFieldset},
		},
	}

	err := Lint(m)
	if err == nil {
		t.Fatal("expected lint failures")
	}
	msg := err.Error()
	if !strings.Contains(msg, `group "group_outer" lists child "group_inner" whose parent is "group_other"`) {
		t.Errorf("missing children-side report, got:\n%s", msg)
	}
	if !strings.Contains(msg, `group "group_inner" names parent "group_other" which does not list it`) {
		t.Errorf("missing parent-side report, got:\n%s", msg)
	}
}

func TestLint_ParentCycle(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"group_b"}, Parent: "group_b", Format: FormatFieldset},
			{Name: "group_b", Children: []string{"group_a"}, Parent: "group_a", Format: FormatFieldset},
		},
	}

	err := Lint(m)
	if err == nil {
		t.Fatal("expected lint failures")
	}
	if !strings.Contains(err.Error(), "parent cycle") {
		t.Errorf("missing cycle report, got:\n%s", err)
	}
}

func TestNormalize_DropsDanglingAndDuplicateChildren(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"title", "ghost", "title"}, Format: FormatFieldset},
		},
		Fields: []Field{
			{Name: "title"},
		},
	}

	fixed := m.Normalize()
	if diff := cmp.Diff([]string{"title"}, fixed.Group("group_a").Children); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DedupesDeclaredRecords(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"title"}, Label: "First", Format: FormatFieldset},
			{Name: "group_a", Children: []string{"body"}, Label: "Second", Format: FormatTabs},
		},
		Fields: []Field{
			{Name: "title", Widget: "string_textfield"},
			{Name: "title", Widget: "text_textarea"},
			{Name: "body", Widget: "text_textarea"},
		},
	}

	fixed := m.Normalize()
	if len(fixed.Groups) != 1 || fixed.Groups[0].Label != "First" {
		t.Fatalf("groups = %+v, want only the first group_a record", fixed.Groups)
	}
	if got := len(fixed.Fields); got != 2 {
		t.Fatalf("len(fields) = %d, want 2", got)
	}
	if got := fixed.Field("title").Widget; got != "string_textfield" {
		t.Fatalf("title widget = %q, want the first record's widget", got)
	}
	if err := Lint(fixed); err != nil {
		t.Fatalf("lint after normalize: %v", err)
	}
}

func TestNormalize_FirstContainerWins(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"title"}, Format: FormatFieldset},
			{Name: "group_b", Children: []string{"title"}, Format: FormatFieldset},
		},
		Fields: []Field{
			{Name: "title"},
		},
	}

	fixed := m.Normalize()
	if !fixed.Group("group_a").Contains("title") {
		t.Error("first container lost the field")
	}
	if fixed.Group("group_b").Contains("title") {
		t.Error("second container kept the field")
	}
}

func TestNormalize_RewritesParentFromChildren(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_outer", Children: []string{"group_inner"}, Format: FormatTabs},
			{Name: "group_inner", Children: []string{}, Parent: "group_stale", Format: FormatTab},
		},
	}

	fixed := m.Normalize()
	if got := fixed.Group("group_inner").Parent; got != "group_outer" {
		t.Fatalf("parent = %q, want group_outer", got)
	}
}

func TestNormalize_PromotesCycleMembersToRoot(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"group_b"}, Parent: "group_b", Format: FormatFieldset},
			{Name: "group_b", Children: []string{"group_a"}, Parent: "group_a", Format: FormatFieldset},
		},
	}

	fixed := m.Normalize()
	for _, name := range []string{"group_a", "group_b"} {
		if got := fixed.Group(name).Parent; got != "" {
			t.Errorf("%s parent = %q, want root", name, got)
		}
	}
}

func TestNormalize_ThenLintIsClean(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"title", "title", "ghost", "group_b"}, Parent: "group_b", Format: FormatFieldset},
			{Name: "group_b", Children: []string{"title", "group_a"}, Parent: "group_a", Format: FormatFieldset},
		},
		Fields: []Field{
			{Name: "title"},
		},
		Hidden: NewHiddenSet("field_legacy"),
	}

	if Lint(m) == nil {
		t.Fatal("fixture should fail lint before normalizing")
	}
	if err := Lint(m.Normalize()); err != nil {
		t.Fatalf("lint after normalize: %v", err)
	}
}

func TestNormalize_DoesNotMutateReceiver(t *testing.T) {
	m := Model{
		TargetEntityType: "node",
		Bundle:           "article",
		Groups: []Group{
			{Name: "group_a", Children: []string{"ghost"}, Format: FormatFieldset},
		},
	}
	before := m.Clone()

	_ = m.Normalize()

	if diff := cmp.Diff(before, m); diff != "" {
		t.Fatalf("receiver mutated (-want +got):\n%s", diff)
	}
}
