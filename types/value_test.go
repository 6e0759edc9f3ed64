package types_test

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jsonwire/jsonwire/document"
	"github.com/jsonwire/jsonwire/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    types.Value
		expected string
	}{
		{"null", types.NewNullValue(), "null"},
		{"bool true", types.NewBooleanValue(true), "true"},
		{"bool false", types.NewBooleanValue(false), "false"},
		{"integer", types.NewIntegerValue(10), "10"},
		{"negative integer", types.NewIntegerValue(-42), "-42"},
		{"decimal", types.NewDecimalValue(decimal.RequireFromString("10.1")), "10.1"},
		{"string", types.NewTextValue("bar"), `"bar"`},
		{"string with escapes", types.NewTextValue("a\"b\\c\nd"), `"a\"b\\c\nd"`},
		{"string with control char", types.NewTextValue("\x01"), "\"\\u0001\""},
		{"timestamp", types.NewTimestampFromTime(time.Date(2024, 2, 29, 12, 30, 5, 0, time.UTC)), `"2024-02-29T12:30:05Z"`},
		{"empty array", types.NewArrayValue(document.NewValueBuffer()), "[]"},
		{"nil array", types.NewArrayValue(nil), "[]"},
		{"array", types.NewArrayValue(document.NewValueBuffer(
			types.NewIntegerValue(1),
			types.NewTextValue("two"),
			types.NewNullValue(),
		)), `[1,"two",null]`},
		{"empty object", types.NewObjectValue(document.NewFieldBuffer()), "{}"},
		{"nil object", types.NewObjectValue(nil), "{}"},
		{"object", types.NewObjectValue(document.NewFieldBuffer().
			Add("a", types.NewIntegerValue(1)).
			Add("b", types.NewBooleanValue(false)),
		), `{"a":1,"b":false}`},
		{"nested", types.NewObjectValue(document.NewFieldBuffer().
			Add("list", types.NewArrayValue(document.NewValueBuffer(
				types.NewArrayValue(document.NewValueBuffer()),
				types.NewObjectValue(document.NewFieldBuffer().
					Add("deep", types.NewNumberValue(nil, 0)),
				),
			))),
		), `{"list":[[],{"deep":0}]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := test.value.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, test.expected, string(data))
		})
	}
}

func TestAppendJSON(t *testing.T) {
	dst := []byte("x=")
	dst, err := types.AppendJSON(dst, types.NewIntegerValue(7))
	require.NoError(t, err)
	require.Equal(t, "x=7", string(dst))

	dst, err = types.AppendJSON(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "null", string(dst))
}

func TestAppendJSONDepthLimit(t *testing.T) {
	// build a tree nested deeper than the recursion bound.
	v := types.Value(types.NewIntegerValue(1))
	for i := 0; i < 10001; i++ {
		v = types.NewArrayValue(document.NewValueBuffer(v))
	}

	_, err := types.AppendJSON(nil, v)
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrDepthLimit))
}

func TestObjectIterationOrder(t *testing.T) {
	// the encoder emits pairs in whatever order Iterate yields them;
	// FieldBuffer pins insertion order.
	fb := document.NewFieldBuffer().
		Add("z", types.NewIntegerValue(1)).
		Add("a", types.NewIntegerValue(2)).
		Add("m", types.NewIntegerValue(3))

	data, err := types.MarshalJSON(types.NewObjectValue(fb))
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":2,"m":3}`, string(data))
}

func TestValueIsZero(t *testing.T) {
	tests := []struct {
		name  string
		value types.Value
		want  bool
	}{
		{"null", types.NewNullValue(), true},
		{"false", types.NewBooleanValue(false), true},
		{"true", types.NewBooleanValue(true), false},
		{"zero number", types.NewIntegerValue(0), true},
		{"number", types.NewIntegerValue(3), false},
		{"empty text", types.NewTextValue(""), true},
		{"text", types.NewTextValue("a"), false},
		{"empty array", types.NewArrayValue(document.NewValueBuffer()), true},
		{"array", types.NewArrayValue(document.NewValueBuffer(types.NewNullValue())), false},
		{"empty object", types.NewObjectValue(document.NewFieldBuffer()), true},
		{"object", types.NewObjectValue(document.NewFieldBuffer().Add("a", types.NewNullValue())), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := test.value.IsZero()
			require.NoError(t, err)
			require.Equal(t, test.want, ok)
		})
	}
}

func TestNumberValueAccessors(t *testing.T) {
	d := decimal.RequireFromString("12.345")
	v := types.NewDecimalValue(d)

	require.Equal(t, -3, v.Exponent())
	require.Equal(t, "12345", v.Coefficient().String())
	require.True(t, v.Decimal().Equal(d))
}
