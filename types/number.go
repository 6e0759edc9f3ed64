package types

import (
	"math/big"

	"github.com/jsonwire/jsonwire/encoding"
	"github.com/shopspring/decimal"
)

var _ Value = NewIntegerValue(0)

// NumberValue is an exact decimal number, coefficient × 10^exponent. There
// is no floating point representation anywhere in between, so encoding a
// number never loses precision.
type NumberValue struct {
	coef *big.Int
	exp  int
}

// NewNumberValue returns a JSON number value worth coef × 10^exp.
// The coefficient is used as is; callers must not mutate it afterwards.
func NewNumberValue(coef *big.Int, exp int) NumberValue {
	return NumberValue{coef: coef, exp: exp}
}

// NewIntegerValue returns a JSON number value holding an integer.
func NewIntegerValue(x int64) NumberValue {
	return NumberValue{coef: big.NewInt(x)}
}

// NewDecimalValue returns a JSON number value holding the exact value of d.
func NewDecimalValue(d decimal.Decimal) NumberValue {
	return NumberValue{coef: d.Coefficient(), exp: int(d.Exponent())}
}

func (v NumberValue) V() any {
	return v.Decimal()
}

func (v NumberValue) Type() Type {
	return TypeNumber
}

// Coefficient returns the decimal coefficient. The returned value must not
// be mutated.
func (v NumberValue) Coefficient() *big.Int {
	if v.coef == nil {
		return new(big.Int)
	}

	return v.coef
}

// Exponent returns the power of ten the coefficient is scaled by.
func (v NumberValue) Exponent() int {
	return v.exp
}

// Decimal returns the value as a decimal.Decimal.
func (v NumberValue) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(v.Coefficient(), int32(v.exp))
}

func (v NumberValue) IsZero() (bool, error) {
	return v.Coefficient().Sign() == 0, nil
}

func (v NumberValue) String() string {
	data, _ := v.MarshalJSON()
	return string(data)
}

func (v NumberValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v NumberValue) MarshalJSON() ([]byte, error) {
	return encoding.AppendNumber(nil, v.Coefficient(), v.exp), nil
}
