package encoding

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AppendNumber appends the JSON number token for coef × 10^exp to dst.
//
// The output always re-parses to the exact same value: no precision is lost
// for any (coef, exp) pair. A non-negative exponent is rendered as the plain
// integer coef followed by exp zeros, with no decimal point or exponent
// marker. A negative exponent is handed to the decimal package, which
// produces the exact text for the fractional value.
func AppendNumber(dst []byte, coef *big.Int, exp int) []byte {
	if coef == nil || coef.Sign() == 0 {
		return append(dst, '0')
	}

	if exp < 0 {
		d := decimal.NewFromBigInt(coef, int32(exp))
		return append(dst, d.String()...)
	}

	dst = coef.Append(dst, 10)
	for ; exp > 0; exp-- {
		dst = append(dst, '0')
	}

	return dst
}
