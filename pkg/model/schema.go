package model

import (
	"fmt"
	"math"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Fields carries keyword field values for constructing or describing a record.
type Fields map[string]any

// Field is a single named, typed attribute declaration. Fields are required
// by default; Optional opts out. Extra ozzo rules run after the kind check.
type Field struct {
	name     string
	kind     Kind
	required bool
	enum     *Enum
	nested   *Schema
	rules    []validation.Rule
}

func newField(name string, kind Kind, rules []validation.Rule) *Field {
	if name == "" {
		panic("model: field name cannot be empty")
	}
	return &Field{name: name, kind: kind, required: true, rules: rules}
}

// String declares a string field.
func String(name string, rules ...validation.Rule) *Field {
	return newField(name, KindString, rules)
}

// Int declares an integer field. Any Go integer kind is accepted and stored
// as int64; floats and strings are rejected.
func Int(name string, rules ...validation.Rule) *Field {
	return newField(name, KindInt, rules)
}

// Float declares a float field. Integer and float kinds are accepted and
// stored as float64.
func Float(name string, rules ...validation.Rule) *Field {
	return newField(name, KindFloat, rules)
}

// Bool declares a boolean field.
func Bool(name string, rules ...validation.Rule) *Field {
	return newField(name, KindBool, rules)
}

// EnumField declares a field constrained to the members of enum. Values are
// stored as the member's underlying primitive.
func EnumField(name string, enum *Enum, rules ...validation.Rule) *Field {
	if enum == nil {
		panic("model: enum cannot be nil")
	}
	f := newField(name, KindEnum, rules)
	f.enum = enum
	return f
}

// Nested declares a field holding a record of the given schema.
func Nested(name string, schema *Schema, rules ...validation.Rule) *Field {
	if schema == nil {
		panic("model: nested schema cannot be nil")
	}
	f := newField(name, KindNested, rules)
	f.nested = schema
	return f
}

// Any declares a field accepting any non-nil value.
func Any(name string, rules ...validation.Rule) *Field {
	return newField(name, KindAny, rules)
}

// Optional marks the field as not required at construction time.
func (f *Field) Optional() *Field {
	f.required = false
	return f
}

func (f *Field) Name() string { return f.name }

func (f *Field) Kind() Kind { return f.kind }

// validate normalizes value to the field's storage type and then applies the
// field's extra rules. It never mutates anything.
func (f *Field) validate(value any) (any, error) {
	v, err := f.normalize(value)
	if err != nil {
		return nil, err
	}
	if len(f.rules) > 0 {
		if err := validation.Validate(v, f.rules...); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (f *Field) normalize(value any) (any, error) {
	if value == nil {
		return nil, validation.NewError("validation_nil_value",
			fmt.Sprintf("must be a %s, got nil", f.kind))
	}

	switch f.kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, typeError(f.kind, value)
		}
		return s, nil
	case KindInt:
		return normalizeInt(value)
	case KindFloat:
		return normalizeFloat(value)
	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return nil, typeError(f.kind, value)
		}
		return b, nil
	case KindEnum:
		return f.enum.normalize(value)
	case KindNested:
		return f.normalizeNested(value)
	case KindAny:
		return value, nil
	default:
		return nil, validation.NewError("validation_unknown_kind", "field has an unknown kind")
	}
}

func (f *Field) normalizeNested(value any) (any, error) {
	switch v := value.(type) {
	case *Record:
		if v.schema != f.nested {
			return nil, validation.NewError("validation_schema_mismatch",
				fmt.Sprintf("must be a %s record", f.nested.name))
		}
		return v, nil
	case Fields:
		return f.nested.New(v)
	case map[string]any:
		return f.nested.New(Fields(v))
	default:
		return nil, typeError(f.kind, value)
	}
}

func normalizeInt(value any) (any, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, validation.NewError("validation_int_overflow", "value overflows a 64-bit integer")
		}
		return int64(u), nil
	default:
		return nil, typeError(KindInt, value)
	}
}

func normalizeFloat(value any) (any, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return nil, typeError(KindFloat, value)
	}
}

func typeError(expected Kind, got any) error {
	return validation.NewError("validation_invalid_type",
		fmt.Sprintf("must be a %s, got %T", expected, got))
}

// Schema is an explicit registration of a record shape. Build one per record
// type and share it; schemas are immutable after NewSchema returns.
type Schema struct {
	name   string
	fields []*Field
	byName map[string]*Field
}

// NewSchema declares a record shape. It panics on an empty schema name or on
// duplicate field names, since both are programmer errors in the declaration.
func NewSchema(name string, fields ...*Field) *Schema {
	if name == "" {
		panic("model: schema name cannot be empty")
	}
	byName := make(map[string]*Field, len(fields))
	for _, f := range fields {
		if _, dup := byName[f.name]; dup {
			panic(fmt.Sprintf("model: duplicate field %q in schema %s", f.name, name))
		}
		byName[f.name] = f
	}
	return &Schema{name: name, fields: fields, byName: byName}
}

func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in registration order.
func (s *Schema) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	copy(out, s.fields)
	return out
}
