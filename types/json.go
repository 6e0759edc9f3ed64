package types

import (
	"github.com/cockroachdb/errors"
	"github.com/jsonwire/jsonwire/encoding"
)

// maxDepth bounds the recursion of AppendJSON. Nesting depth equals the
// depth of the input tree, so without a bound a pathologically nested tree
// could exhaust the stack before producing any output.
const maxDepth = 10000

// ErrDepthLimit is returned when a value tree nests deeper than the
// encoder's recursion bound. It is a resource guard, not a domain error:
// any tree within the bound encodes without failure.
var ErrDepthLimit = errors.New("maximum nesting depth exceeded")

// MarshalJSON encodes v to JSON text.
func MarshalJSON(v Value) ([]byte, error) {
	return AppendJSON(nil, v)
}

// AppendJSON appends the JSON text of v to dst and returns the extended
// slice. The output carries no whitespace or indentation and is valid
// UTF-8 as long as text values are. On error dst must be discarded, the
// appended prefix is not valid JSON on its own.
func AppendJSON(dst []byte, v Value) ([]byte, error) {
	return appendJSON(dst, v, 0)
}

func appendJSON(dst []byte, v Value, depth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, errors.WithStack(ErrDepthLimit)
	}

	if v == nil {
		return encoding.AppendNull(dst), nil
	}

	switch v.Type() {
	case TypeNull:
		return encoding.AppendNull(dst), nil
	case TypeBoolean:
		return encoding.AppendBool(dst, AsBool(v)), nil
	case TypeNumber:
		n := AsNumber(v)
		return encoding.AppendNumber(dst, n.Coefficient(), n.Exponent()), nil
	case TypeText:
		return encoding.AppendQuotedText(dst, AsString(v)), nil
	case TypeTimestamp:
		t := AsUTCTime(v)
		dst = append(dst, '"')
		dst = encoding.AppendUTCTime(dst, t.Date.Year, t.Date.Month, t.Date.Day, t.Seconds)
		return append(dst, '"'), nil
	case TypeArray:
		return appendArray(dst, AsArray(v), depth+1)
	case TypeObject:
		return appendObject(dst, AsObject(v), depth+1)
	}

	return nil, errors.Errorf("unsupported value type: %s", v.Type())
}

func appendArray(dst []byte, a Array, depth int) ([]byte, error) {
	dst = append(dst, '[')

	if a != nil {
		var notFirst bool
		err := a.Iterate(func(_ int, v Value) error {
			if notFirst {
				dst = append(dst, ',')
			}
			notFirst = true

			var err error
			dst, err = appendJSON(dst, v, depth)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return append(dst, ']'), nil
}

func appendObject(dst []byte, o Object, depth int) ([]byte, error) {
	dst = append(dst, '{')

	if o != nil {
		var notFirst bool
		err := o.Iterate(func(field string, v Value) error {
			if notFirst {
				dst = append(dst, ',')
			}
			notFirst = true

			dst = encoding.AppendQuotedText(dst, field)
			dst = append(dst, ':')

			var err error
			dst, err = appendJSON(dst, v, depth)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return append(dst, '}'), nil
}
