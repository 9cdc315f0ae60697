package encodeservice

import "unicode/utf16"

// EncodeString returns the UTF-8 bytes of input, derived by walking its
// UTF-16 code-unit form. For any well-formed string the result is identical
// to the string's own bytes; invalid UTF-8 in the input is carried through as
// U+FFFD, matching how a UTF-16 host would have received the text.
func EncodeString(input string) []byte {
	return EncodeUTF16Units(utf16.Encode([]rune(input)))
}

// EncodeUTF16Units converts a sequence of UTF-16 code units into UTF-8 bytes.
// A high surrogate immediately followed by a low surrogate is combined into
// one code point above U+FFFF and emitted as a 4-byte sequence, consuming
// both units. A lone surrogate is encoded best-effort as the plain 3-byte
// form of its unit value instead of failing; this is deliberate leniency,
// not strict UTF-8 validation. The function is total and never errors.
func EncodeUTF16Units(units []uint16) []byte {
	out := make([]byte, 0, len(units))

	for i := 0; i < len(units); i++ {
		u := uint32(units[i])

		switch {
		case u <= 0x7F:
			out = append(out, byte(u))
		case u <= 0x7FF:
			out = append(out,
				0xC0|byte(u>>6),
				0x80|byte(u&0x3F))
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(uint32(units[i+1])):
			lo := uint32(units[i+1])
			i++

			cp := 0x10000 + ((u&0x3FF)<<10 | lo&0x3FF)
			out = append(out,
				0xF0|byte(cp>>18),
				0x80|byte(cp>>12&0x3F),
				0x80|byte(cp>>6&0x3F),
				0x80|byte(cp&0x3F))
		default:
			// BMP code points, plus unpaired surrogates falling back to a
			// single-unit encoding.
			out = append(out,
				0xE0|byte(u>>12),
				0x80|byte(u>>6&0x3F),
				0x80|byte(u&0x3F))
		}
	}

	return out
}

func isHighSurrogate(u uint32) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

func isLowSurrogate(u uint32) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}
