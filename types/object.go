package types

import "github.com/cockroachdb/errors"

var _ Value = NewObjectValue(nil)

type ObjectValue struct {
	o Object
}

// NewObjectValue returns a JSON object value.
func NewObjectValue(x Object) *ObjectValue {
	return &ObjectValue{
		o: x,
	}
}

func (v *ObjectValue) V() any {
	return v.o
}

func (v *ObjectValue) Type() Type {
	return TypeObject
}

func (v *ObjectValue) IsZero() (bool, error) {
	if v.o == nil {
		return true, nil
	}

	err := v.o.Iterate(func(_ string, _ Value) error {
		// We return an error in the first iteration to stop it.
		return errors.WithStack(errStop)
	})
	if err == nil {
		// If err is nil, it means that we didn't iterate,
		// thus the object is empty.
		return true, nil
	}
	if errors.Is(err, errStop) {
		// If err is errStop, it means that we iterated
		// at least once, thus the object is not empty.
		return false, nil
	}
	// An unexpected error occurred, let's return it!
	return false, err
}

func (v *ObjectValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v *ObjectValue) MarshalText() ([]byte, error) {
	return v.MarshalJSON()
}

func (v *ObjectValue) MarshalJSON() ([]byte, error) {
	return MarshalJSON(v)
}
