package types

import (
	"strconv"

	"github.com/jsonwire/jsonwire/encoding"
)

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a JSON boolean value.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) IsZero() (bool, error) {
	return !bool(v), nil
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

func (v BooleanValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v BooleanValue) MarshalJSON() ([]byte, error) {
	return encoding.AppendBool(nil, bool(v)), nil
}
