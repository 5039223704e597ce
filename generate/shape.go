package main

import (
	"fmt"
	"strings"
)

// Shape is a structure of the model: an operation input or output, or a value
// nested in one.
type Shape struct {
	Name          string    `json:"-"`
	Kind          string    `json:"kind"`
	File          string    `json:"file"`
	Documentation string    `json:"documentation"`
	Members       []*Member `json:"members"`

	model *Model
}

// Ref describes the type of a member, or of the elements of a list or map.
type Ref struct {
	Type   string `json:"type"`
	Shape  string `json:"shape,omitempty"`
	Enum   string `json:"enum,omitempty"`
	Member *Ref   `json:"member,omitempty"`
	Value  *Ref   `json:"value,omitempty"`
}

// Member is a single field of a shape.
type Member struct {
	Ref

	Name          string `json:"name"`
	LocationName  string `json:"locationName"`
	Min           *int   `json:"min,omitempty"`
	Required      bool   `json:"required,omitempty"`
	Documentation string `json:"documentation,omitempty"`

	model *Model
}

// HasValidate reports whether a Validate method is generated for the shape.
// Outputs are never validated.
func (s *Shape) HasValidate() bool {
	return s.Kind != "output" && s.needsValidate(map[string]bool{})
}

func (s *Shape) needsValidate(seen map[string]bool) bool {
	if seen[s.Name] {
		return false
	}
	seen[s.Name] = true
	for _, m := range s.Members {
		if m.Required || m.MinCheck() != "" {
			return true
		}
		if nested := m.nestedShape(); nested != nil && nested.needsValidate(seen) {
			return true
		}
	}
	return false
}

func (m *Member) nestedShape() *Shape {
	ref := m.Ref
	for ref.Type == "list" {
		ref = *ref.Member
	}
	if ref.Type != "structure" {
		return nil
	}
	return m.model.Shapes[ref.Shape]
}

// NestedValidate returns how nested values of the member are validated:
// "structure", "list" or "nested-list", or "" when they are not.
func (m *Member) NestedValidate() string {
	nested := m.nestedShape()
	if nested == nil || !nested.needsValidate(map[string]bool{}) {
		return ""
	}
	switch {
	case m.Type == "structure":
		return "structure"
	case m.Member.Type == "list":
		return "nested-list"
	default:
		return "list"
	}
}

// MinCheck returns how the member's minimum constraint is checked: "len" for
// strings and collections, "value" for numbers, or "" when there is none.
func (m *Member) MinCheck() string {
	if m.Min == nil {
		return ""
	}
	switch m.Type {
	case "integer", "long":
		return "value"
	}
	if *m.Min > 0 {
		return "len"
	}
	return ""
}

// MinValue returns the member's minimum, or zero.
func (m *Member) MinValue() int {
	if m.Min == nil {
		return 0
	}
	return *m.Min
}

// GoType returns the Go type of the member's field, for example *string or
// []*ProjectSource.
func (m *Member) GoType() string {
	return goType(m.Ref)
}

// ElemType returns the Go type of a single element of a list member, as taken
// by its Append method.
func (m *Member) ElemType() string {
	if m.Member.Type == "string" {
		return "string"
	}
	return goType(*m.Member)
}

// ScalarType returns the parameter type of the setter for scalar members, or
// "" for structures and collections.
func (m *Member) ScalarType() string {
	switch m.Type {
	case "string":
		return "string"
	case "boolean":
		return "bool"
	case "integer", "long":
		return "int64"
	case "timestamp":
		return "time.Time"
	}
	return ""
}

func goType(ref Ref) string {
	switch ref.Type {
	case "string":
		return "*string"
	case "boolean":
		return "*bool"
	case "integer", "long":
		return "*int64"
	case "timestamp":
		return "*time.Time"
	case "structure":
		return "*" + ref.Shape
	case "list":
		return "[]" + goType(*ref.Member)
	case "map":
		return "map[string]" + goType(*ref.Value)
	}
	return "interface{}"
}

// IsBoolean checks whether the member is a boolean
func (m *Member) IsBoolean() bool {
	return m.Type == "boolean"
}

// IsStructure checks whether the member refers to another shape
func (m *Member) IsStructure() bool {
	return m.Type == "structure"
}

// IsList checks whether the member is a list
func (m *Member) IsList() bool {
	return m.Type == "list"
}

// IsNestedList checks whether the member is a list of lists
func (m *Member) IsNestedList() bool {
	return m.IsList() && m.Member.Type == "list"
}

// IsStringList checks whether the member is a list of strings
func (m *Member) IsStringList() bool {
	return m.IsList() && m.Member.Type == "string"
}

// IsMap checks whether the member is a map
func (m *Member) IsMap() bool {
	return m.Type == "map"
}

// Tags returns the struct tag of the member's field.
func (m *Member) Tags() string {
	tags := []string{fmt.Sprintf("locationName:%q", m.LocationName)}
	if m.Min != nil {
		tags = append(tags, fmt.Sprintf("min:\"%d\"", *m.Min))
	}
	tags = append(tags, fmt.Sprintf("type:%q", m.Type))
	if m.Required {
		tags = append(tags, `required:"true"`)
	}
	if m.Enum != "" {
		tags = append(tags, fmt.Sprintf("enum:%q", m.Enum))
	}
	tags = append(tags, fmt.Sprintf("json:\"%s,omitempty\"", m.LocationName))
	return "`" + strings.Join(tags, " ") + "`"
}

// imports returns the standard library and third party packages the
// generated code for the shapes depends on.
func imports(shapes []*Shape) (std []string, ext []string) {

	stdSet := map[string]bool{}
	extSet := map[string]bool{"github.com/aws/aws-sdk-go/aws/awsutil": true}

	for _, s := range shapes {
		for _, m := range s.Members {
			if m.Type == "timestamp" {
				stdSet["time"] = true
			}
			if m.IsBoolean() || m.IsMap() || m.IsStringList() {
				extSet["github.com/aws/aws-sdk-go/aws"] = true
			}
		}
		if s.HasValidate() {
			extSet["github.com/aws/aws-sdk-go/aws/request"] = true
			for _, m := range s.Members {
				if v := m.NestedValidate(); v == "list" || v == "nested-list" {
					stdSet["fmt"] = true
				}
			}
		}
	}

	return sortedKeys(stdSet), sortedKeys(extSet)

}
