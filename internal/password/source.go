package password

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// Source yields uniformly distributed integers in [0, n). Implementations
// may assume n > 0.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide math/rand/v2 generator. It is safe
// for concurrent use and is not suitable for secrets.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// CryptoSource returns a source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

// fixedSource replays a fixed index sequence, wrapping around at the end.
type fixedSource struct {
	indices []int
	pos     int
}

// FixedSource returns a source that cycles through indices. Each value is
// reduced modulo n so it always lands inside the alphabet. With no indices
// it always returns 0.
func FixedSource(indices ...int) Source {
	return &fixedSource{indices: append([]int(nil), indices...)}
}

func (f *fixedSource) IntN(n int) int {
	if len(f.indices) == 0 {
		return 0
	}
	v := f.indices[f.pos%len(f.indices)]
	f.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
