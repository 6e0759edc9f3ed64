// Package types defines the JSON value tree encoded by this module: a
// closed set of variants dispatched exhaustively, plus the calendar and
// time values rendered as ISO-8601 text.
package types

import "fmt"

// Type represents a type supported by the value tree.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeText
	TypeTimestamp
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeText:
		return "text"
	case TypeTimestamp:
		return "timestamp"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Value is a single node of the tree. Values are immutable: encoding
// never modifies them and they carry no state between calls.
type Value interface {
	V() any
	Type() Type
	String() string
	IsZero() (bool, error)
	MarshalJSON() ([]byte, error)
}

// An Array contains an ordered sequence of values.
type Array interface {
	// Iterate goes through all the values of the array and calls the given function
	// by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(i int, value Value) error) error
}

// An Object is a mapping from unique string fields to values. The order in
// which Iterate yields the pairs is up to the implementation and is
// observable in the encoded output.
type Object interface {
	// Iterate goes through all the fields of the object and calls the given function
	// by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(field string, value Value) error) error
}
