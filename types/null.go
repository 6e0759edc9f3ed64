package types

import "github.com/jsonwire/jsonwire/encoding"

var _ Value = NewNullValue()

type NullValue struct{}

// NewNullValue returns a JSON null value.
func NewNullValue() NullValue {
	return NullValue{}
}

func (v NullValue) V() any {
	return nil
}

func (v NullValue) Type() Type {
	return TypeNull
}

func (v NullValue) IsZero() (bool, error) {
	return true, nil
}

func (v NullValue) String() string {
	return "null"
}

func (v NullValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v NullValue) MarshalJSON() ([]byte, error) {
	return encoding.AppendNull(nil), nil
}
