package model

import "sort"

// NodeKind tags a tree node as a group or a field.
type NodeKind string

const (
	NodeKindGroup NodeKind = "group"
	NodeKindField NodeKind = "field"
)

// Node is one entry in the hierarchical view: a group carrying its resolved
// children, or a field leaf carrying its widget.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name"`
	Label    string   `json:"label,omitempty"`
	Format   Format   `json:"format,omitempty"`
	Widget   string   `json:"widget,omitempty"`
	Weight   int      `json:"weight"`
	Children []Node   `json:"children,omitempty"`
}

// Tree is the derived hierarchical view of a model: the root-level nodes with
// each group's children recursively resolved and sorted, plus the hidden
// field names. Building a tree never mutates the model.
type Tree struct {
	Nodes  []Node   `json:"nodes"`
	Hidden []string `json:"hidden,omitempty"`
}

// Tree derives the hierarchical view. Root level holds every group with an
// empty parent plus every field contained in no group's children list. Each
// group's children entries resolve to the matching group or field record;
// entries matching neither are dropped so a malformed document degrades to an
// incomplete tree instead of failing. Siblings sort by weight ascending,
// stable on ties. A visited set guards recursion so a corrupted parent chain
// cannot loop.
func (m Model) Tree() Tree {
	visited := make(map[string]struct{}, len(m.Groups))
	return Tree{
		Nodes:  m.rootNodes(visited),
		Hidden: m.Hidden.Names(),
	}
}

func (m Model) rootNodes(visited map[string]struct{}) []Node {
	contained := make(map[string]struct{})
	for _, g := range m.Groups {
		for _, child := range g.Children {
			contained[child] = struct{}{}
		}
	}

	var nodes []Node
	for _, g := range m.Groups {
		if g.Parent != "" {
			continue
		}
		nodes = append(nodes, m.groupNode(g, visited))
	}
	for _, f := range m.Fields {
		if _, ok := contained[f.Name]; ok {
			continue
		}
		nodes = append(nodes, fieldNode(f))
	}

	sortSiblings(nodes)
	return nodes
}

func (m Model) groupNode(g Group, visited map[string]struct{}) Node {
	node := Node{
		Kind:   NodeKindGroup,
		Name:   g.Name,
		Label:  g.Label,
		Format: g.Format,
		Weight: g.Weight,
	}
	if _, seen := visited[g.Name]; seen {
		return node
	}
	visited[g.Name] = struct{}{}

	for _, childName := range g.Children {
		if child := m.Group(childName); child != nil {
			node.Children = append(node.Children, m.groupNode(*child, visited))
			continue
		}
		if field := m.Field(childName); field != nil {
			node.Children = append(node.Children, fieldNode(*field))
		}
		// unresolved references are dropped, matching the permissive parse
	}

	sortSiblings(node.Children)
	return node
}

func fieldNode(f Field) Node {
	return Node{
		Kind:   NodeKindField,
		Name:   f.Name,
		Widget: f.Widget,
		Weight: f.Weight,
	}
}

func sortSiblings(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Weight < nodes[j].Weight
	})
}
