// Package md5 implements the MD5 message digest as defined in RFC 1321.
//
// This is a deliberate from-scratch implementation: the rest of the hash
// service trusts the platform's crypto packages, but MD5 is kept in-repo so
// the whole routine, padding and compression included, is auditable in one
// place. MD5 is cryptographically broken; it is provided for checksumming
// and interoperability, not security.
package md5

import (
	"encoding/binary"
	"math/bits"
)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize of the compression function in bytes.
const BlockSize = 64

// Accumulator seed values from RFC 1321 section 3.3.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// sineTable holds the additive constants K[i] = floor(|sin(i+1)| * 2^32).
// Hardcoded rather than computed at init so the values are greppable against
// the RFC.
var sineTable = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shiftTable holds the per-round left-rotation amounts, four values cycled
// per 16-round group.
var shiftTable = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// Sum returns the MD5 digest of data. The whole message is processed in one
// call; all intermediate state is local, so Sum is safe for concurrent use.
func Sum(data []byte) [Size]byte {
	a0 := uint32(init0)
	b0 := uint32(init1)
	c0 := uint32(init2)
	d0 := uint32(init3)

	msg := pad(data)

	for blk := 0; blk < len(msg); blk += BlockSize {
		var m [16]uint32
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(msg[blk+4*i:])
		}

		a, b, c, d := a0, b0, c0, d0

		for j := 0; j < 64; j++ {
			var f uint32
			var g int
			switch {
			case j < 16:
				f = (b & c) | (^b & d)
				g = j
			case j < 32:
				f = (d & b) | (^d & c)
				g = (5*j + 1) % 16
			case j < 48:
				f = b ^ c ^ d
				g = (3*j + 5) % 16
			default:
				f = c ^ (b | ^d)
				g = (7 * j) % 16
			}

			// Every addition here wraps mod 2^32; uint32 does that for free.
			sum := a + f + sineTable[j] + m[g]
			a, d, c, b = d, c, b, b+bits.RotateLeft32(sum, shiftTable[j])
		}

		a0 += a
		b0 += b
		c0 += c
		d0 += d
	}

	var digest [Size]byte
	binary.LittleEndian.PutUint32(digest[0:], a0)
	binary.LittleEndian.PutUint32(digest[4:], b0)
	binary.LittleEndian.PutUint32(digest[8:], c0)
	binary.LittleEndian.PutUint32(digest[12:], d0)

	return digest
}

// pad returns data with the RFC 1321 trailer appended: a single 0x80 byte,
// zeros until the length is 56 mod 64, then the original length in bits as a
// little-endian 64-bit integer. The result is always a whole number of blocks.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, 0, ((len(data)+8)/BlockSize+1)*BlockSize)
	padded = append(padded, data...)
	padded = append(padded, 0x80)

	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0x00)
	}

	return binary.LittleEndian.AppendUint64(padded, bitLen)
}
