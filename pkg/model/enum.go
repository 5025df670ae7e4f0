package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Member is a symbolic enum name bound to an underlying primitive value.
type Member struct {
	Name  string
	Value any
}

// M builds an enum member.
func M(name string, value any) Member {
	return Member{Name: name, Value: value}
}

// Enum is a closed set of members over a string or integer underlying value.
// Records store and report the underlying value, never the symbolic member.
type Enum struct {
	name    string
	members []Member
}

// NewEnum declares an enum. It panics on an empty name, no members, a member
// value that is not a string or int, or duplicate member names or values.
func NewEnum(name string, members ...Member) *Enum {
	if name == "" {
		panic("model: enum name cannot be empty")
	}
	if len(members) == 0 {
		panic(fmt.Sprintf("model: enum %s has no members", name))
	}
	names := make(map[string]bool, len(members))
	values := make(map[any]bool, len(members))
	for _, m := range members {
		switch m.Value.(type) {
		case string, int:
		default:
			panic(fmt.Sprintf("model: enum %s member %s has unsupported value type %T", name, m.Name, m.Value))
		}
		if m.Name == "" || names[m.Name] {
			panic(fmt.Sprintf("model: enum %s has duplicate or empty member name %q", name, m.Name))
		}
		if values[m.Value] {
			panic(fmt.Sprintf("model: enum %s has duplicate member value %v", name, m.Value))
		}
		names[m.Name] = true
		values[m.Value] = true
	}
	return &Enum{name: name, members: members}
}

func (e *Enum) Name() string { return e.name }

// Members returns the declared members in declaration order.
func (e *Enum) Members() []Member {
	out := make([]Member, len(e.members))
	copy(out, e.members)
	return out
}

// normalize reduces a member or a raw underlying value to the primitive.
func (e *Enum) normalize(value any) (any, error) {
	if m, ok := value.(Member); ok {
		for _, known := range e.members {
			if known == m {
				return m.Value, nil
			}
		}
		return nil, validation.NewError("validation_unknown_member",
			fmt.Sprintf("must be a member of %s", e.name))
	}

	underlying := make([]interface{}, len(e.members))
	for i, m := range e.members {
		underlying[i] = m.Value
	}
	if err := validation.Validate(value, validation.In(underlying...)); err != nil {
		return nil, validation.NewError("validation_not_in_enum",
			fmt.Sprintf("must be one of the values of %s", e.name))
	}
	return value, nil
}
