package predictor

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch marks a schema that lacks a structurally required field.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Structurally required fields: every model family consumes the slot clock.
// All other fields are optional; vectors leave absent fields at zero.
const (
	FieldHour   = "hour"
	FieldMinute = "minute"
)

// Schema is the ordered list of feature names a trained model expects. The
// order defines the vector layout and must stay consistent between training
// and inference; the index map is built once at load time.
type Schema struct {
	fields []string
	index  map[string]int
}

// NewSchema builds a Schema from the ordered field names of a model
// artifact. It fails if hour or minute is missing, since no vector can be
// aligned to the slot clock without them.
func NewSchema(fields []string) (Schema, error) {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := idx[f]; dup {
			return Schema{}, fmt.Errorf("%w: duplicate field %q", ErrSchemaMismatch, f)
		}
		idx[f] = i
	}
	for _, req := range []string{FieldHour, FieldMinute} {
		if _, ok := idx[req]; !ok {
			return Schema{}, fmt.Errorf("%w: required field %q missing", ErrSchemaMismatch, req)
		}
	}
	cp := make([]string, len(fields))
	copy(cp, fields)
	return Schema{fields: cp, index: idx}, nil
}

// Len returns the vector width.
func (s Schema) Len() int { return len(s.fields) }

// Index returns the vector position of the named field.
func (s Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Fields returns a copy of the ordered field names.
func (s Schema) Fields() []string {
	cp := make([]string, len(s.fields))
	copy(cp, s.fields)
	return cp
}
