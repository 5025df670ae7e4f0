package model

import (
	"github.com/mitchellh/mapstructure"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrUnknownField is reported when a value is supplied for a field name the
// schema does not declare.
var ErrUnknownField = validation.NewError("validation_unknown_field", "is not a declared field")

// Record is a validated instance of a Schema. Construct with Schema.New,
// mutate with Set; every path through either revalidates the affected fields.
type Record struct {
	schema *Schema
	values map[string]any
}

// New constructs a record from keyword field values. Every supplied value is
// validated against its field's declared kind and rules; unknown names and
// missing required fields are errors. Failures are collected per field into a
// validation.Errors map and no record is produced on any failure.
func (s *Schema) New(values Fields) (*Record, error) {
	errs := validation.Errors{}
	stored := make(map[string]any, len(s.fields))

	for name := range values {
		if _, ok := s.byName[name]; !ok {
			errs[name] = ErrUnknownField
		}
	}

	for _, f := range s.fields {
		value, supplied := values[f.name]
		if !supplied {
			if f.required {
				errs[f.name] = validation.ErrRequired
			}
			continue
		}
		v, err := f.validate(value)
		if err != nil {
			errs[f.name] = err
			continue
		}
		stored[f.name] = v
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Record{schema: s, values: stored}, nil
}

// Schema returns the schema the record was constructed from.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the current value of a field and whether it is set.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Set assigns a single field, revalidating it with the same rules as
// construction. On failure the prior value is left unchanged. The error is a
// validation.Errors map keyed by the field name.
func (r *Record) Set(name string, value any) error {
	f, ok := r.schema.byName[name]
	if !ok {
		return validation.Errors{name: ErrUnknownField}
	}
	v, err := f.validate(value)
	if err != nil {
		return validation.Errors{name: err}
	}
	r.values[name] = v
	return nil
}

// ToDict returns the record as a plain map of field name to current value.
// Nested records are flattened to maps and enum fields carry their underlying
// primitive value. The call has no side effects.
func (r *Record) ToDict() map[string]any {
	out := make(map[string]any, len(r.values))
	for name, value := range r.values {
		if nested, ok := value.(*Record); ok {
			out[name] = nested.ToDict()
			continue
		}
		out[name] = value
	}
	return out
}

// Decode maps the record's fields onto a caller-defined struct. Field names
// match struct fields case-insensitively or via mapstructure tags.
func (r *Record) Decode(out any) error {
	return mapstructure.Decode(r.ToDict(), out)
}
