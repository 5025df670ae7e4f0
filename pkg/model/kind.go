package model

// Kind is the declared semantic type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindNested
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindNested:
		return "nested record"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}
