package types

import "github.com/jsonwire/jsonwire/encoding"

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a JSON string value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) IsZero() (bool, error) {
	return v == "", nil
}

func (v TextValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v TextValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	return encoding.AppendQuotedText(nil, string(v)), nil
}
