package encodeservice

import (
	"errors"
	"strings"
)

// EncodeService provides the text-to-bytes encoding operations the hash
// pipeline is built on, exposed by name for the encode command.
type EncodeService struct{}

// NewEncodeService creates and returns a new EncodeService instance.
func NewEncodeService() *EncodeService {
	return &EncodeService{}
}

// Encode takes a method name and input string, then returns the encoded string.
// Returns error if method is unsupported.
func (s *EncodeService) Encode(method string, input string) (string, error) {
	method = strings.ToLower(method)

	switch method {
	case "utf8", "utf":
		return string(EncodeString(input)), nil
	case "hex", "utf8-hex", "utf-hex":
		return EncodeStringHex(input), nil
	default:
		return "", errors.New("unknown encode method: " + method)
	}
}
