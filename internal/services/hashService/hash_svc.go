package hashservice

import (
	"context"
	"fmt"
	"sync"

	encodeservice "github.com/redjax/hashkit/internal/services/encodeService"
	"github.com/redjax/hashkit/internal/services/hashService/md5"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a single hash computation.
//
// Success is true exactly when Err is empty. Hash is the lowercase hex
// digest, or the empty string when the computation failed or the input text
// was empty.
type Result struct {
	Success bool
	Hash    string
	Err     string
}

func okResult(hash string) Result {
	return Result{Success: true, Hash: hash}
}

func errResult(err error) Result {
	return Result{Success: false, Err: err.Error()}
}

// HashService computes digests over caller-supplied text. It holds no state;
// every computation is independent, so one service value is safe to share
// across goroutines.
type HashService struct{}

// NewHashService creates and returns a new HashService instance.
func NewHashService() *HashService {
	return &HashService{}
}

// ComputeOne hashes text under the given algorithm and returns the lowercase
// hex digest. Empty text short-circuits to an empty successful result without
// touching any digest routine. Failures from the underlying primitive are
// reported in the Result rather than escaping; MD5 cannot fail.
func (s *HashService) ComputeOne(text string, alg Algorithm) Result {
	if text == "" {
		return okResult("")
	}

	sum, err := digest(encodeservice.EncodeString(text), alg)
	if err != nil {
		return errResult(err)
	}

	return okResult(encodeservice.ToHex(sum))
}

// ComputeBytes hashes a raw byte payload under the given algorithm, skipping
// the text encoding step. Used for file contents, which are already bytes.
// Unlike ComputeOne there is no empty shortcut; an empty payload yields the
// algorithm's digest of zero bytes.
func (s *HashService) ComputeBytes(data []byte, alg Algorithm) Result {
	sum, err := digest(data, alg)
	if err != nil {
		return errResult(err)
	}

	return okResult(encodeservice.ToHex(sum))
}

// ComputeAll hashes text under every supported algorithm concurrently and
// returns one entry per algorithm. The per-algorithm computations share no
// state, so a failure in one is reported in its own entry and leaves the
// others intact. Empty text yields empty successful results for every
// algorithm without spawning any work.
func (s *HashService) ComputeAll(ctx context.Context, text string) map[Algorithm]Result {
	results := make(map[Algorithm]Result, len(Algorithms()))

	if text == "" {
		for _, alg := range Algorithms() {
			results[alg] = okResult("")
		}
		return results
	}

	data := encodeservice.EncodeString(text)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, alg := range Algorithms() {
		alg := alg
		g.Go(func() error {
			var res Result
			if err := ctx.Err(); err != nil {
				res = errResult(err)
			} else {
				res = s.ComputeBytes(data, alg)
			}

			mu.Lock()
			results[alg] = res
			mu.Unlock()

			return nil
		})
	}

	// Workers report per-algorithm failures in their own Result entries, so
	// Wait only joins; it never returns an error.
	g.Wait()

	return results
}

// digest dispatches to the MD5 routine or the platform SHA primitive. The
// switch is exhaustive over the closed Algorithm set; an out-of-range value
// can only come from a caller casting integers by hand.
func digest(data []byte, alg Algorithm) ([]byte, error) {
	switch alg {
	case MD5:
		sum := md5.Sum(data)
		return sum[:], nil
	case SHA1, SHA256, SHA384, SHA512:
		return shaDigest(data, alg)
	default:
		return nil, fmt.Errorf("unknown hash algorithm: %s", alg)
	}
}
