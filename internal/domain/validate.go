package domain

import (
	"fmt"
	"sort"
)

// Validator checks a parsed document tree against a SchemaNode tree.
// Strict mode additionally rejects document keys not declared in the
// schema; non-strict mode ignores them (forward compatible).
type Validator struct {
	Strict bool
}

// NewValidator creates a Validator.
func NewValidator(strict bool) *Validator {
	return &Validator{Strict: strict}
}

// Validate traverses the schema depth-first and returns every violation
// found in a single pass. It never stops at the first violation, never
// mutates the document, and holds no state between calls.
func (v *Validator) Validate(doc any, schema SchemaNode) Report {
	var violations []Violation

	// The schema root is looked up as a key of the document root, so the
	// root name ("runconfig") appears in every violation path.
	root := map[string]any{}
	if m, ok := doc.(map[string]any); ok {
		root = m
	} else if doc != nil {
		violations = append(violations, Violation{
			Path:     schema.Name,
			Reason:   ReasonTypeMismatch,
			Expected: string(KindGroup),
			Actual:   describeValue(doc),
		})
		return newReport(violations)
	}

	value, present := root[schema.Name]
	v.validateKey(schema.Name, schema, value, present, &violations)

	// The root scope is an anonymous group whose only declared child is
	// the schema root, so strict mode sweeps it like any other group.
	v.checkUnknownKeys("", root, []string{schema.Name}, &violations)
	return newReport(violations)
}

func newReport(violations []Violation) Report {
	status := StatusPass
	if len(violations) > 0 {
		status = StatusFail
	}
	return Report{Status: status, Violations: violations}
}

// validateKey handles presence before dispatching on kind. A required key
// that is absent (or explicitly null) records one violation and does not
// recurse further into that subtree.
func (v *Validator) validateKey(path string, node SchemaNode, value any, present bool, out *[]Violation) {
	if !present || value == nil {
		if node.Required {
			*out = append(*out, Violation{Path: path, Reason: ReasonMissingRequired})
		}
		return
	}
	v.validateValue(path, node, value, out)
}

func (v *Validator) validateValue(path string, node SchemaNode, value any, out *[]Violation) {
	switch node.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			*out = append(*out, mismatch(path, KindString, value))
		}

	case KindNumber:
		if !isNumber(value) {
			*out = append(*out, mismatch(path, KindNumber, value))
		}

	case KindBoolean:
		if _, ok := value.(bool); !ok {
			*out = append(*out, mismatch(path, KindBoolean, value))
		}

	case KindEnum:
		s, ok := value.(string)
		if !ok {
			*out = append(*out, mismatch(path, KindString, value))
			return
		}
		for _, allowed := range node.AllowedValues {
			if s == allowed {
				return
			}
		}
		*out = append(*out, Violation{
			Path:    path,
			Reason:  ReasonInvalidEnum,
			Allowed: node.AllowedValues,
			Actual:  s,
		})

	case KindList:
		v.validateList(path, node, value, out)

	case KindGroup:
		v.validateGroup(path, node, value, out)
	}
}

func (v *Validator) validateList(path string, node SchemaNode, value any, out *[]Violation) {
	items, ok := value.([]any)
	if !ok {
		*out = append(*out, mismatch(path, KindList, value))
		return
	}

	if node.MinItems > 0 && len(items) < node.MinItems {
		*out = append(*out, Violation{
			Path:     path,
			Reason:   ReasonListTooShort,
			Expected: fmt.Sprintf("at least %d element(s)", node.MinItems),
			Actual:   fmt.Sprintf("%d", len(items)),
		})
	}

	if node.Elem == nil {
		return
	}
	for i, item := range items {
		v.validateValue(fmt.Sprintf("%s[%d]", path, i), *node.Elem, item, out)
	}
}

func (v *Validator) validateGroup(path string, node SchemaNode, value any, out *[]Violation) {
	mapping, ok := value.(map[string]any)
	if !ok {
		// A scalar or sequence where a mapping is expected is a single
		// violation for the group, not one per missing child.
		*out = append(*out, mismatch(path, KindGroup, value))
		return
	}

	for _, child := range node.Children {
		childValue, present := mapping[child.Name]
		v.validateKey(path+"."+child.Name, child, childValue, present, out)
	}

	v.checkUnknownKeys(path+".", mapping, node.ChildNames(), out)
}

// checkUnknownKeys records a strict-mode violation for every key of
// mapping not in declared. Unknown keys are reported in sorted order so
// reports stay deterministic across map iteration.
func (v *Validator) checkUnknownKeys(prefix string, mapping map[string]any, declared []string, out *[]Violation) {
	if !v.Strict {
		return
	}

	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}

	var unknown []string
	for key := range mapping {
		if !declaredSet[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		viol := Violation{Path: prefix + key, Reason: ReasonUnknownKey}
		if suggestion := SuggestKey(key, declared); suggestion != "" {
			viol.Hint = fmt.Sprintf("did you mean %q?", suggestion)
		}
		*out = append(*out, viol)
	}
}

func mismatch(path string, expected Kind, value any) Violation {
	return Violation{
		Path:     path,
		Reason:   ReasonTypeMismatch,
		Expected: string(expected),
		Actual:   describeValue(value),
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int64, uint64, float64:
		return true
	}
	return false
}

// describeValue names the document-level type of a parsed YAML value for
// violation messages.
func describeValue(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}
