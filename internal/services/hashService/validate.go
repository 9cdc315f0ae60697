package hashservice

// LooksLikeHash reports whether candidate is structurally plausible as a hex
// digest of the given algorithm: exactly the canonical hex length, every
// character a hex digit (either case accepted). It makes no claim that the
// candidate is an actual digest of any input, and an empty string is never
// valid for any algorithm.
func LooksLikeHash(candidate string, alg Algorithm) bool {
	if len(candidate) != alg.HexLength() {
		return false
	}

	for i := 0; i < len(candidate); i++ {
		if !isHexDigit(candidate[i]) {
			return false
		}
	}

	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
