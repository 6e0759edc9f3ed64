package types

import "github.com/cockroachdb/errors"

var errStop = errors.New("stop")

func AsBool(v Value) bool {
	bv, ok := v.(BooleanValue)
	if ok {
		return bool(bv)
	}

	return v.V().(bool)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if ok {
		return string(tv)
	}

	return v.V().(string)
}

func AsNumber(v Value) NumberValue {
	nv, ok := v.(NumberValue)
	if ok {
		return nv
	}

	return v.V().(NumberValue)
}

func AsUTCTime(v Value) UTCTime {
	tv, ok := v.(TimestampValue)
	if ok {
		return UTCTime(tv)
	}

	return v.V().(UTCTime)
}

func AsArray(v Value) Array {
	av, ok := v.(*ArrayValue)
	if ok {
		return av.a
	}

	return v.V().(Array)
}

func AsObject(v Value) Object {
	ov, ok := v.(*ObjectValue)
	if ok {
		return ov.o
	}

	return v.V().(Object)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

// IsTruthy returns whether v is not equal to the zero value of its type.
func IsTruthy(v Value) (bool, error) {
	if v.Type() == TypeNull {
		return false, nil
	}

	b, err := v.IsZero()
	return !b, err
}
