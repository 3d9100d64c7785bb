package schemaloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/groundtrack/runcheck/internal/domain"
)

// Loader implements domain.SchemaLoader by compiling a YAML schema
// description into a SchemaNode tree. Product teams ship these schema
// files beside their run configurations so new products can be validated
// without a rebuild.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// nodeSpec is the on-disk shape of one schema node.
type nodeSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Required bool       `yaml:"required"`
	Values   []string   `yaml:"values"`
	Element  *nodeSpec  `yaml:"element"`
	MinItems int        `yaml:"min_items"`
	Children []nodeSpec `yaml:"children"`
}

// Load reads the schema file at path and compiles it. Compile errors name
// the offending node by its dot path within the schema.
func (l *Loader) Load(path string) (domain.SchemaNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SchemaNode{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return domain.SchemaNode{}, &domain.ParseError{File: path, Err: err}
	}

	node, err := compile(spec, spec.Name)
	if err != nil {
		return domain.SchemaNode{}, fmt.Errorf("compiling %s: %w", path, err)
	}
	return node, nil
}

func compile(spec nodeSpec, path string) (domain.SchemaNode, error) {
	if spec.Name == "" {
		return domain.SchemaNode{}, fmt.Errorf("node at %q has no name", path)
	}
	kind := domain.Kind(spec.Kind)
	if !domain.IsValidKind(kind) {
		return domain.SchemaNode{}, fmt.Errorf("node %s: unknown kind %q", path, spec.Kind)
	}

	node := domain.SchemaNode{
		Name:     spec.Name,
		Kind:     kind,
		Required: spec.Required,
		MinItems: spec.MinItems,
	}

	switch kind {
	case domain.KindEnum:
		if len(spec.Values) == 0 {
			return domain.SchemaNode{}, fmt.Errorf("node %s: enum needs at least one value", path)
		}
		node.AllowedValues = spec.Values

	case domain.KindList:
		if spec.Element == nil {
			return domain.SchemaNode{}, fmt.Errorf("node %s: list needs an element type", path)
		}
		elemSpec := *spec.Element
		if elemSpec.Name == "" {
			elemSpec.Name = spec.Name
		}
		elem, err := compile(elemSpec, path+"[]")
		if err != nil {
			return domain.SchemaNode{}, err
		}
		node.Elem = &elem

	case domain.KindGroup:
		for _, childSpec := range spec.Children {
			child, err := compile(childSpec, path+"."+childSpec.Name)
			if err != nil {
				return domain.SchemaNode{}, err
			}
			node.Children = append(node.Children, child)
		}
	}

	if kind != domain.KindEnum && len(spec.Values) > 0 {
		return domain.SchemaNode{}, fmt.Errorf("node %s: values only apply to enum nodes", path)
	}
	if kind != domain.KindList && spec.MinItems > 0 {
		return domain.SchemaNode{}, fmt.Errorf("node %s: min_items only applies to list nodes", path)
	}
	if kind != domain.KindList && spec.Element != nil {
		return domain.SchemaNode{}, fmt.Errorf("node %s: element only applies to list nodes", path)
	}

	return node, nil
}
