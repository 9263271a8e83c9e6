// Package ecrypt implements textbook RSA over arbitrary-precision
// integers: key generation from randomly drawn primes, raw modular
// encryption and decryption, and a simple numeric padding variant. It is
// demonstration-grade; nothing here is hardened cryptography.
package ecrypt

import (
	"math/big"
	weak "math/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/erlware-deprecated/ecrypt/numtheory"
	"github.com/erlware-deprecated/ecrypt/prime"
)

// DefaultDigits is the prime magnitude used when none is requested.
const DefaultDigits = 64

// ErrNegativeExponent reports that the extended Euclidean algorithm
// produced a negative private exponent for the chosen prime pair. The
// pair is discarded whole; D is never reduced modulo the totient.
var ErrNegativeExponent = errors.New("ecrypt: negative private exponent")

var one = big.NewInt(1)

// PublicKey holds the modulus and the encryption exponent.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey holds the modulus and the decryption exponent.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyPair couples both key halves with the largest message magnitude the
// pair safely encodes, which is the smaller of the two source primes.
type KeyPair struct {
	Public         PublicKey
	Private        PrivateKey
	MaxMessageSize *big.Int
}

// equal returns true if two arbitrary-precision integers are equal.
func equal(z1, z2 *big.Int) bool {
	return z1.Cmp(z2) == 0
}

// lesser returns a copy of the smaller of two integers.
func lesser(z1, z2 *big.Int) *big.Int {
	if z1.Cmp(z2) < 0 {
		return new(big.Int).Set(z1)
	}
	return new(big.Int).Set(z2)
}

// KeyGen builds a key pair from two primes. The public exponent is the
// smallest integer not below 2 that is coprime to the totient; the
// private exponent comes from the extended Euclidean algorithm and must
// be positive, otherwise ErrNegativeExponent is returned and the caller
// should draw fresh primes.
func KeyGen(p, q *big.Int) (*KeyPair, error) {
	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	totient := pMinusOne.Mul(pMinusOne, qMinusOne)

	e := big.NewInt(2)
	for !equal(numtheory.GCD(totient, e), one) {
		e.Add(e, one)
	}
	d, _, err := numtheory.ExtGCD(e, totient)
	if err != nil {
		return nil, err
	}
	if d.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	return &KeyPair{
		Public:         PublicKey{N: n, E: e},
		Private:        PrivateKey{N: n, D: d},
		MaxMessageSize: lesser(p, q),
	}, nil
}

// Generator produces key pairs from a caller-supplied random source and
// reports rejected prime pairs through its logger.
type Generator struct {
	Rand *weak.Rand
	Log  zerolog.Logger
}

// NewGenerator returns a Generator with a wall-clock-seeded random
// source and no logging.
func NewGenerator() *Generator {
	return &Generator{Rand: prime.NewRand(), Log: zerolog.Nop()}
}

// GenerateKey draws two independent primes of the requested number of
// decimal digits and combines them into a key pair, redrawing both
// primes for as long as the pair yields a negative private exponent.
// There is no retry bound; each rejection is logged so callers can
// watch for pathological runs.
func (g *Generator) GenerateKey(magnitude int) (*KeyPair, error) {
	for attempt := 1; ; attempt++ {
		p := prime.PrimeRand(magnitude, prime.Digits, g.Rand)
		q := prime.PrimeRand(magnitude, prime.Digits, g.Rand)
		kp, err := KeyGen(p, q)
		if err == ErrNegativeExponent {
			g.Log.Debug().
				Int("attempt", attempt).
				Msg("prime pair rejected: negative private exponent")
			continue
		}
		if err != nil {
			return nil, err
		}
		return kp, nil
	}
}

// GenerateKey generates a key pair from primes of the requested number
// of decimal digits, with a fresh wall-clock-seeded random source.
func GenerateKey(magnitude int) (*KeyPair, error) {
	return NewGenerator().GenerateKey(magnitude)
}

// GenerateKeyDefault generates a key pair from 64-digit primes.
func GenerateKeyDefault() (*KeyPair, error) {
	return GenerateKey(DefaultDigits)
}
