package encodeservice

import (
	"encoding/hex"
)

// ToHex renders bytes as lowercase hexadecimal, two digits per byte, with no
// prefix or separators. This is the canonical text form for digests.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeStringHex returns the lowercase hex rendering of the UTF-8 bytes of
// the input string.
func EncodeStringHex(input string) string {
	return ToHex(EncodeString(input))
}
