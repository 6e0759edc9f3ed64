// Package encoding implements the low-level JSON text encoders.
//
// Every function appends the textual representation of its argument to dst
// and returns the extended slice, so callers can chain them to build a
// document without intermediate allocations. The functions in this package
// operate on primitives only; dispatching over a value tree is done by the
// types package.
package encoding

// AppendNull appends the null literal to dst.
func AppendNull(dst []byte) []byte {
	return append(dst, "null"...)
}

// AppendBool appends either the true or the false literal to dst.
func AppendBool(dst []byte, x bool) []byte {
	if x {
		return append(dst, "true"...)
	}

	return append(dst, "false"...)
}

// AppendPad2 appends n as exactly two decimal digits, zero-padded.
// n must be in [0, 99]; the behavior is undefined otherwise. Callers are
// expected to guarantee the range, it is not checked here.
func AppendPad2(dst []byte, n int) []byte {
	return append(dst, '0'+byte(n/10), '0'+byte(n%10))
}
