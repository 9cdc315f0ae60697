package hashservice_test

import (
	"strings"
	"testing"

	hashservice "github.com/redjax/hashkit/internal/services/hashService"
	"github.com/stretchr/testify/assert"
)

func TestLooksLikeHash(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		alg       hashservice.Algorithm
		want      bool
	}{
		{"md5 valid", "d41d8cd98f00b204e9800998ecf8427e", hashservice.MD5, true},
		{"md5 uppercase accepted", "D41D8CD98F00B204E9800998ECF8427E", hashservice.MD5, true},
		{"md5 mixed case accepted", "d41D8cd98F00b204E9800998Ecf8427E", hashservice.MD5, true},
		{"sha1 valid", "a9993e364706816aba3e25717850c26c9cd0d89d", hashservice.SHA1, true},
		{"empty never valid", "", hashservice.MD5, false},
		{"too short", "d41d8cd9", hashservice.MD5, false},
		{"one char short", strings.Repeat("a", 31), hashservice.MD5, false},
		{"one char long", strings.Repeat("a", 33), hashservice.MD5, false},
		{"right length wrong algorithm", strings.Repeat("a", 32), hashservice.SHA1, false},
		{"sized but non-hex char", strings.Repeat("a", 31) + "g", hashservice.MD5, false},
		{"sized but whitespace", strings.Repeat("a", 31) + " ", hashservice.MD5, false},
		{"sha512 valid length", strings.Repeat("0123456789abcdef", 8), hashservice.SHA512, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hashservice.LooksLikeHash(tt.candidate, tt.alg))
		})
	}
}

// Every algorithm rejects the empty string and accepts its own digests.
func TestLooksLikeHashPerAlgorithm(t *testing.T) {
	svc := hashservice.NewHashService()

	for _, alg := range hashservice.Algorithms() {
		assert.False(t, hashservice.LooksLikeHash("", alg), alg)

		res := svc.ComputeOne("round trip", alg)
		assert.True(t, hashservice.LooksLikeHash(res.Hash, alg), alg)

		// Digests of a differently-sized algorithm don't pass.
		for _, other := range hashservice.Algorithms() {
			if other.HexLength() != alg.HexLength() {
				assert.False(t, hashservice.LooksLikeHash(res.Hash, other))
			}
		}
	}
}
