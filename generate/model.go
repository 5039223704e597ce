package main

import (
	"sort"

	"github.com/pkg/errors"
)

// Model represents a service model document: the operations, shapes and
// enumerations of a single API version.
type Model struct {
	Metadata   Metadata              `json:"metadata"`
	Operations map[string]*Operation `json:"operations"`
	Shapes     map[string]*Shape     `json:"shapes"`
	Enums      map[string][]string   `json:"enums"`
}

// Metadata describes the service the model belongs to.
type Metadata struct {
	APIVersion      string `json:"apiVersion"`
	EndpointsID     string `json:"endpointsId"`
	Protocol        string `json:"protocol"`
	ServiceID       string `json:"serviceId"`
	ServiceFullName string `json:"serviceFullName"`
	SigningName     string `json:"signingName"`
	TargetPrefix    string `json:"targetPrefix"`
}

// Operation is a single API operation, linking its input and output shapes.
type Operation struct {
	Name          string     `json:"-"`
	Input         string     `json:"input"`
	Output        string     `json:"output"`
	Documentation string     `json:"documentation"`
	File          string     `json:"file"`
	Paginator     *Paginator `json:"paginator"`
}

// Paginator names the members an operation pages its results with.
type Paginator struct {
	InputToken  string `json:"inputToken"`
	OutputToken string `json:"outputToken"`
	LimitKey    string `json:"limitKey"`
}

// resolve names every operation and shape after its key, links members back to
// the model, and checks that every reference points at a known shape or enum.
func (m *Model) resolve() error {

	for name, op := range m.Operations {
		op.Name = name
		for _, ref := range []string{op.Input, op.Output} {
			if _, ok := m.Shapes[ref]; !ok {
				return errors.Errorf("operation %s references unknown shape %q", name, ref)
			}
		}
	}

	for name, shape := range m.Shapes {
		shape.Name = name
		shape.model = m
		sort.Slice(shape.Members, func(i, j int) bool {
			return shape.Members[i].Name < shape.Members[j].Name
		})
		for _, member := range shape.Members {
			member.model = m
			if err := m.check(member.Ref); err != nil {
				return errors.Wrapf(err, "%s.%s", name, member.Name)
			}
		}
	}

	return nil

}

func (m *Model) check(ref Ref) error {
	switch ref.Type {
	case "string", "boolean", "integer", "long", "timestamp":
	case "structure":
		if _, ok := m.Shapes[ref.Shape]; !ok {
			return errors.Errorf("unknown shape %q", ref.Shape)
		}
	case "list":
		if ref.Member == nil {
			return errors.New("list without member type")
		}
		return m.check(*ref.Member)
	case "map":
		if ref.Value == nil {
			return errors.New("map without value type")
		}
		return m.check(*ref.Value)
	default:
		return errors.Errorf("unsupported type %q", ref.Type)
	}
	if ref.Enum != "" {
		if _, ok := m.Enums[ref.Enum]; !ok {
			return errors.Errorf("unknown enum %q", ref.Enum)
		}
	}
	return nil
}

// SortedOperations returns the operations ordered by name.
func (m *Model) SortedOperations() []*Operation {
	ops := make([]*Operation, 0, len(m.Operations))
	for _, op := range m.Operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})
	return ops
}

// Files groups the shapes by the file they are generated into. Shapes within
// a file are ordered by name.
func (m *Model) Files() map[string][]*Shape {
	files := map[string][]*Shape{}
	for _, shape := range m.Shapes {
		files[shape.File] = append(files[shape.File], shape)
	}
	for _, shapes := range files {
		sort.Slice(shapes, func(i, j int) bool {
			return shapes[i].Name < shapes[j].Name
		})
	}
	return files
}
