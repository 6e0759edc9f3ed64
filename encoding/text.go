package encoding

import "unicode/utf8"

const hexDigits = "0123456789abcdef"

// AppendText appends the escaped JSON representation of s to dst, without
// the surrounding quotes.
//
// Only backslashes, double quotes and control characters below 0x20 are
// escaped. Newline, carriage return and tab use their two-character escape,
// the remaining control characters are written as \u00XX. Every other byte,
// including the bytes of multi-byte UTF-8 sequences, is copied through
// unchanged, so the output is valid UTF-8 whenever the input is.
//
// The loop copies maximal runs of unescaped bytes with a single append
// instead of appending byte by byte.
func AppendText(dst []byte, s string) []byte {
	var start int

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		dst = append(dst, s[start:i]...)
		dst = appendEscapedByte(dst, c)
		start = i + 1
	}

	return append(dst, s[start:]...)
}

// AppendQuotedText appends the escaped representation of s surrounded by
// double quotes.
func AppendQuotedText(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = AppendText(dst, s)
	return append(dst, '"')
}

// AppendRunes is the code point oriented counterpart of AppendText. Code
// points above 0x7F are written as their UTF-8 byte sequence, the rest go
// through the same escaping rules as AppendText. For text that is valid
// UTF-8, both functions produce identical output.
func AppendRunes(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		if r > 0x7F {
			dst = utf8.AppendRune(dst, r)
			continue
		}

		c := byte(r)
		if c >= 0x20 && c != '"' && c != '\\' {
			dst = append(dst, c)
			continue
		}

		dst = appendEscapedByte(dst, c)
	}

	return dst
}

// AppendQuotedRunes appends the escaped representation of rs surrounded by
// double quotes.
func AppendQuotedRunes(dst []byte, rs []rune) []byte {
	dst = append(dst, '"')
	dst = AppendRunes(dst, rs)
	return append(dst, '"')
}

func appendEscapedByte(dst []byte, c byte) []byte {
	switch c {
	case '\\':
		return append(dst, '\\', '\\')
	case '"':
		return append(dst, '\\', '"')
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	}

	return append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
}
