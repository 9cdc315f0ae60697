package hashservice

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// shaDigest bridges to the platform crypto packages for the SHA family.
// Unlike MD5, these are never reimplemented here; the standard library
// primitives are the trusted external collaborator.
func shaDigest(data []byte, alg Algorithm) ([]byte, error) {
	h, err := shaHasher(alg)
	if err != nil {
		return nil, err
	}

	// hash.Hash.Write never returns an error per its contract.
	h.Write(data)

	return h.Sum(nil), nil
}

func shaHasher(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("no platform primitive for algorithm: %s", alg)
	}
}
