package domain

// Kind identifies the variant of a SchemaNode.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindList    Kind = "list"
	KindGroup   Kind = "group"
)

// ValidKinds enumerates all recognized schema node kinds.
var ValidKinds = []Kind{
	KindString, KindNumber, KindBoolean, KindEnum, KindList, KindGroup,
}

// IsValidKind reports whether k names a recognized node kind.
func IsValidKind(k Kind) bool {
	for _, v := range ValidKinds {
		if v == k {
			return true
		}
	}
	return false
}

// SchemaNode describes one expected key in a run-configuration document.
// Exactly one payload is meaningful per kind: AllowedValues for enum,
// Elem/MinItems for list, Children for group. Nodes are built once at
// startup and never mutated, so a single tree is safe for concurrent
// validation calls.
type SchemaNode struct {
	Name          string       `json:"name"`
	Kind          Kind         `json:"kind"`
	Required      bool         `json:"required,omitempty"`
	AllowedValues []string     `json:"allowed_values,omitempty"`
	Elem          *SchemaNode  `json:"element,omitempty"`
	MinItems      int          `json:"min_items,omitempty"`
	Children      []SchemaNode `json:"children,omitempty"`
}

// Child returns the child node with the given name, or nil.
func (n *SchemaNode) Child(name string) *SchemaNode {
	for i := range n.Children {
		if n.Children[i].Name == name {
			return &n.Children[i]
		}
	}
	return nil
}

// ChildNames returns the declared child key names in schema order.
func (n *SchemaNode) ChildNames() []string {
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}

// Walk visits n and every descendant depth-first, passing the dot path of
// each node. List element nodes are visited with a "[]" path segment.
func (n *SchemaNode) Walk(visit func(path string, node *SchemaNode)) {
	n.walk(n.Name, visit)
}

func (n *SchemaNode) walk(path string, visit func(path string, node *SchemaNode)) {
	visit(path, n)
	switch n.Kind {
	case KindGroup:
		for i := range n.Children {
			n.Children[i].walk(path+"."+n.Children[i].Name, visit)
		}
	case KindList:
		if n.Elem != nil {
			n.Elem.walk(path+"[]", visit)
		}
	}
}
