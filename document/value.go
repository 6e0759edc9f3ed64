package document

import (
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jsonwire/jsonwire/types"
	"github.com/shopspring/decimal"
)

// NewValue converts a native Go value into a types.Value.
//
// Integers become exact decimal numbers with a zero exponent. Floats go
// through decimal.NewFromFloat, which picks the shortest decimal that
// round-trips to the same float, so the encoded number re-parses to the
// same value. Maps are sorted by key to make the resulting object
// deterministic.
func NewValue(x any) (types.Value, error) {
	if x == nil {
		return types.NewNullValue(), nil
	}

	switch v := x.(type) {
	case types.Value:
		return v, nil
	case bool:
		return types.NewBooleanValue(v), nil
	case int:
		return types.NewIntegerValue(int64(v)), nil
	case int8:
		return types.NewIntegerValue(int64(v)), nil
	case int16:
		return types.NewIntegerValue(int64(v)), nil
	case int32:
		return types.NewIntegerValue(int64(v)), nil
	case int64:
		return types.NewIntegerValue(v), nil
	case uint:
		return types.NewIntegerValue(int64(v)), nil
	case uint8:
		return types.NewIntegerValue(int64(v)), nil
	case uint16:
		return types.NewIntegerValue(int64(v)), nil
	case uint32:
		return types.NewIntegerValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return types.NewNumberValue(new(big.Int).SetUint64(v), 0), nil
		}
		return types.NewIntegerValue(int64(v)), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, errors.Errorf("cannot convert %v to a JSON number", v)
		}
		return types.NewDecimalValue(decimal.NewFromFloat32(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("cannot convert %v to a JSON number", v)
		}
		return types.NewDecimalValue(decimal.NewFromFloat(v)), nil
	case *big.Int:
		return types.NewNumberValue(new(big.Int).Set(v), 0), nil
	case decimal.Decimal:
		return types.NewDecimalValue(v), nil
	case string:
		return types.NewTextValue(v), nil
	case time.Time:
		return types.NewTimestampFromTime(v), nil
	case []any:
		vb := NewValueBuffer()
		for _, e := range v {
			ev, err := NewValue(e)
			if err != nil {
				return nil, err
			}
			vb = vb.Append(ev)
		}
		return types.NewArrayValue(vb), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fb := NewFieldBuffer()
		for _, k := range keys {
			kv, err := NewValue(v[k])
			if err != nil {
				return nil, err
			}
			fb.Add(k, kv)
		}
		return types.NewObjectValue(fb), nil
	}

	return nil, errors.Errorf("unsupported type %T", x)
}

// MarshalJSON encodes v to JSON text. It is a convenience wrapper around
// types.MarshalJSON.
func MarshalJSON(v types.Value) ([]byte, error) {
	return types.MarshalJSON(v)
}
