// Package prime tests primality and generates random probable primes:
// membership tables below 100, a 50-round Fermat witness test above, and
// candidate construction in decimal-digit or byte magnitudes.
package prime

import (
	"math/big"
	weak "math/rand"
	"time"

	"github.com/erlware-deprecated/ecrypt/numtheory"
)

// fermatRounds is the number of witnesses a large candidate must survive
// before it is declared a probable prime.
const fermatRounds = 50

// smallPrimes lists every prime below 100. The first four serve the
// single-digit check on their own.
var smallPrimes = [...]int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

var (
	ten     = big.NewInt(10)
	hundred = big.NewInt(100)
)

// NewRand returns a pseudo-random generator seeded from the wall clock.
// Every top-level convenience call draws from a fresh one, so no
// generator state is shared between callers.
func NewRand() *weak.Rand {
	return weak.New(weak.NewSource(time.Now().UnixNano()))
}

// IsPrime reports whether d is prime: exactly below 100, and
// probabilistically above, where composites with enough Fermat liars
// (Carmichael numbers) can slip through.
func IsPrime(d *big.Int) bool {
	return IsPrimeRand(d, NewRand())
}

// IsPrimeRand is IsPrime with an explicit witness source.
func IsPrimeRand(d *big.Int, rng *weak.Rand) bool {
	switch {
	case d.Cmp(ten) < 0:
		return member(d, smallPrimes[:4])
	case d.Cmp(hundred) < 0:
		return member(d, smallPrimes[:])
	default:
		return fermat(d, rng)
	}
}

// member reports whether d appears in a table of small primes.
func member(d *big.Int, table []int64) bool {
	if !d.IsInt64() {
		return false
	}
	n := d.Int64()
	for _, p := range table {
		if n == p {
			return true
		}
	}
	return false
}

// fermat runs the witness rounds. Each round draws a random odd integer
// w with fewer decimal digits than d and checks w^d ≡ w (mod d); one
// failed round declares d composite immediately.
func fermat(d *big.Int, rng *weak.Rand) bool {
	digits := len(d.String())
	for i := 0; i < fermatRounds; i++ {
		w := witness(d, digits, rng)
		z, err := numtheory.ExpMod(w, d, d)
		if err != nil {
			// Unreachable: d >= 100 here, so modulus and exponent
			// are both positive.
			panic(err)
		}
		if z.Cmp(w) != 0 {
			return false
		}
	}
	return true
}

// witness draws an odd integer of a digit length chosen uniformly from
// [1, digits-1]. Draws that reach d are rejected without consuming a
// round.
func witness(d *big.Int, digits int, rng *weak.Rand) *big.Int {
	for {
		w := RandomCandidate(1+rng.Intn(digits-1), Digits, rng)
		if w.Cmp(d) < 0 {
			return w
		}
	}
}
