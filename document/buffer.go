// Package document provides in-memory implementations of the types.Array
// and types.Object interfaces, plus construction of value trees from
// native Go values.
package document

import (
	"github.com/cockroachdb/errors"
	"github.com/jsonwire/jsonwire/types"
)

var (
	// ErrValueNotFound is returned by GetByIndex when the index is out of
	// range.
	ErrValueNotFound = errors.New("value not found")

	// ErrFieldNotFound is returned by GetByField when the object doesn't
	// contain the field.
	ErrFieldNotFound = errors.New("field not found")
)

var _ types.Array = NewValueBuffer()

// ValueBuffer is an array that holds values in memory.
type ValueBuffer []types.Value

// NewValueBuffer creates a buffer of values.
func NewValueBuffer(values ...types.Value) ValueBuffer {
	if len(values) == 0 {
		// If called with no values return a non-nil slice.
		return ValueBuffer{}
	}

	return ValueBuffer(values)
}

// Iterate over all the values of the buffer. It implements the types.Array
// interface.
func (vb ValueBuffer) Iterate(fn func(i int, value types.Value) error) error {
	for i, v := range vb {
		err := fn(i, v)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByIndex returns the value set at the given index. If the index is out
// of range it returns ErrValueNotFound.
func (vb ValueBuffer) GetByIndex(i int) (types.Value, error) {
	if i < 0 || i >= len(vb) {
		return nil, errors.WithStack(ErrValueNotFound)
	}

	return vb[i], nil
}

// Append a value to the buffer and return a new buffer.
func (vb ValueBuffer) Append(v types.Value) ValueBuffer {
	return append(vb, v)
}

// Len returns the number of values in the buffer.
func (vb ValueBuffer) Len() int {
	return len(vb)
}

var _ types.Object = NewFieldBuffer()

// Field is a field-value pair of an object.
type Field struct {
	Name  string
	Value types.Value
}

// FieldBuffer is an object that holds fields in memory, in insertion
// order. Its Iterate yields the fields in the order they were added, so
// the encoded output of a FieldBuffer-backed object is deterministic.
type FieldBuffer struct {
	fields []Field
}

// NewFieldBuffer creates an empty object buffer.
func NewFieldBuffer() *FieldBuffer {
	return new(FieldBuffer)
}

// Add a field to the buffer. The caller is responsible for field
// uniqueness; a duplicate field would be encoded twice.
func (fb *FieldBuffer) Add(field string, v types.Value) *FieldBuffer {
	fb.fields = append(fb.fields, Field{
		Name:  field,
		Value: v,
	})

	return fb
}

// Iterate over all the fields of the buffer in insertion order. It
// implements the types.Object interface.
func (fb *FieldBuffer) Iterate(fn func(field string, value types.Value) error) error {
	for _, f := range fb.fields {
		err := fn(f.Name, f.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByField returns the value of the given field. If the field is not
// present it returns ErrFieldNotFound.
func (fb *FieldBuffer) GetByField(field string) (types.Value, error) {
	for _, f := range fb.fields {
		if f.Name == field {
			return f.Value, nil
		}
	}

	return nil, errors.WithStack(ErrFieldNotFound)
}

// Len returns the number of fields in the buffer.
func (fb *FieldBuffer) Len() int {
	return len(fb.fields)
}
