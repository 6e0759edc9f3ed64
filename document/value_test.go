package document_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/buger/jsonparser"
	"github.com/google/go-cmp/cmp"
	"github.com/jsonwire/jsonwire/document"
	"github.com/jsonwire/jsonwire/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "null"},
		{"bool", true, "true"},
		{"int", 10, "10"},
		{"int64", int64(-42), "-42"},
		{"uint64 above int64", uint64(math.MaxInt64) + 1, "9223372036854775808"},
		{"float64", 10.1, "10.1"},
		{"float64 integral", 10.0, "10"},
		{"big int", new(big.Int).SetInt64(1234), "1234"},
		{"decimal", decimal.RequireFromString("0.1"), "0.1"},
		{"string", "bar", `"bar"`},
		{"time", time.Date(2024, 2, 29, 12, 30, 5, 0, time.UTC), `"2024-02-29T12:30:05Z"`},
		{"slice", []any{1, "two", nil}, `[1,"two",null]`},
		{"map", map[string]any{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"nested", map[string]any{"list": []any{[]any{}, map[string]any{}}}, `{"list":[[],{}]}`},
		{"value passthrough", types.NewTextValue("v"), `"v"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := document.NewValue(test.input)
			require.NoError(t, err)

			data, err := document.MarshalJSON(v)
			require.NoError(t, err)
			require.Equal(t, test.expected, string(data))
		})
	}
}

func TestNewValueErrors(t *testing.T) {
	_, err := document.NewValue(struct{}{})
	require.Error(t, err)

	_, err = document.NewValue(math.NaN())
	require.Error(t, err)

	_, err = document.NewValue(math.Inf(1))
	require.Error(t, err)

	_, err = document.NewValue([]any{struct{}{}})
	require.Error(t, err)
}

// parseValue rebuilds a value tree from encoded JSON. It is the inverse of
// the encoder, used to check that the output re-parses to the input.
func parseValue(dataType jsonparser.ValueType, data []byte) (types.Value, error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return nil, err
		}
		return types.NewDecimalValue(d), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		vb := document.NewValueBuffer()
		var elErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if elErr != nil {
				return
			}
			var v types.Value
			v, elErr = parseValue(dataType, value)
			if elErr == nil {
				vb = vb.Append(v)
			}
		})
		if err != nil {
			return nil, err
		}
		if elErr != nil {
			return nil, elErr
		}
		return types.NewArrayValue(vb), nil
	case jsonparser.Object:
		fb := document.NewFieldBuffer()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
			v, err := parseValue(dataType, value)
			if err != nil {
				return err
			}
			fb.Add(string(key), v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return types.NewObjectValue(fb), nil
	}

	return nil, nil
}

// flatten converts a value tree into plain Go values so that go-cmp can
// diff two trees structurally.
func flatten(t *testing.T, v types.Value) any {
	t.Helper()

	switch v.Type() {
	case types.TypeNull:
		return nil
	case types.TypeBoolean:
		return types.AsBool(v)
	case types.TypeNumber:
		return types.AsNumber(v).Decimal().String()
	case types.TypeText:
		return types.AsString(v)
	case types.TypeArray:
		out := []any{}
		err := types.AsArray(v).Iterate(func(_ int, value types.Value) error {
			out = append(out, flatten(t, value))
			return nil
		})
		require.NoError(t, err)
		return out
	case types.TypeObject:
		out := map[string]any{}
		err := types.AsObject(v).Iterate(func(field string, value types.Value) error {
			out[field] = flatten(t, value)
			return nil
		})
		require.NoError(t, err)
		return out
	}

	t.Fatalf("unexpected type %s", v.Type())
	return nil
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"scalars", []any{nil, true, false, 1, -2.5, "text"}},
		{"escaped strings", []any{"a\"b\\c\nd", "\x01\x1f", "héllo 世界"}},
		{"numbers", []any{0, int64(math.MaxInt64), 0.1, decimal.RequireFromString("123456789.000000001")}},
		{"nesting", map[string]any{
			"empty list": []any{},
			"empty map":  map[string]any{},
			"mixed": []any{
				map[string]any{"a": []any{1, 2, 3}},
				[]any{map[string]any{}},
			},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := document.NewValue(test.input)
			require.NoError(t, err)

			data, err := document.MarshalJSON(v)
			require.NoError(t, err)

			// the output must be parseable JSON that decodes back to
			// a structurally equal tree.
			_, dataType, _, err := jsonparser.Get(data)
			require.NoError(t, err)

			parsed, err := parseValue(dataType, data)
			require.NoError(t, err)

			diff := cmp.Diff(flatten(t, v), flatten(t, parsed))
			require.Empty(t, diff)
		})
	}
}
