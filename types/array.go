package types

import "github.com/cockroachdb/errors"

var _ Value = NewArrayValue(nil)

type ArrayValue struct {
	a Array
}

// NewArrayValue returns a JSON array value.
func NewArrayValue(x Array) *ArrayValue {
	return &ArrayValue{
		a: x,
	}
}

func (v *ArrayValue) V() any {
	return v.a
}

func (v *ArrayValue) Type() Type {
	return TypeArray
}

func (v *ArrayValue) IsZero() (bool, error) {
	if v.a == nil {
		return true, nil
	}

	err := v.a.Iterate(func(_ int, _ Value) error {
		// We return an error in the first iteration to stop it.
		return errors.WithStack(errStop)
	})
	if err == nil {
		// If err is nil, it means that we didn't iterate,
		// thus the array is empty.
		return true, nil
	}
	if errors.Is(err, errStop) {
		// If err is errStop, it means that we iterated
		// at least once, thus the array is not empty.
		return false, nil
	}
	// An unexpected error occurred, let's return it!
	return false, err
}

func (v *ArrayValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v *ArrayValue) MarshalText() ([]byte, error) {
	return v.MarshalJSON()
}

func (v *ArrayValue) MarshalJSON() ([]byte, error) {
	return MarshalJSON(v)
}
