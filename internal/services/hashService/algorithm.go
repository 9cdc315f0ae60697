package hashservice

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported digest routines. The set is
// closed; dispatch switches over it exhaustively instead of falling back on
// a default case at runtime.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA256
	SHA384
	SHA512
)

// Algorithms returns the closed set of supported algorithms in canonical
// order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA384, SHA512}
}

// String returns the canonical lowercase name, e.g. "sha256".
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return 16
	case SHA1:
		return 20
	case SHA256:
		return 32
	case SHA384:
		return 48
	case SHA512:
		return 64
	}
	return 0
}

// HexLength returns the length of the canonical lowercase hex rendering,
// always two characters per digest byte.
func (a Algorithm) HexLength() int {
	return a.Size() * 2
}

// ParseAlgorithm resolves a user-supplied name to an Algorithm. Matching is
// case-insensitive and tolerates the dashed spellings ("SHA-256").
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha384":
		return SHA384, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm: %s", name)
	}
}
