package prime

import (
	"math/big"
	weak "math/rand"
)

// Unit selects how a candidate's magnitude is measured.
type Unit int

const (
	// Digits measures magnitude in decimal digits. It is the default.
	Digits Unit = iota
	// Bytes measures magnitude in bytes.
	Bytes
)

// oddDigits are the admissible least-significant decimal digits.
const oddDigits = "13579"

var two = big.NewInt(2)

// RandomCandidate returns a random odd integer of the requested
// magnitude, suitable as a starting point for NextPrime.
func RandomCandidate(magnitude int, unit Unit, rng *weak.Rand) *big.Int {
	if unit == Bytes {
		return byteCandidate(magnitude, rng)
	}
	return digitCandidate(magnitude, rng)
}

// digitCandidate builds a decimal string of the requested length with no
// zero digits and an odd final digit, then parses it. A magnitude of
// zero (or one) yields a single odd digit.
func digitCandidate(magnitude int, rng *weak.Rand) *big.Int {
	buf := make([]byte, 0, magnitude)
	for i := 1; i < magnitude; i++ {
		buf = append(buf, byte('1'+rng.Intn(9)))
	}
	buf = append(buf, oddDigits[rng.Intn(5)])
	z, ok := new(big.Int).SetString(string(buf), 10)
	if !ok {
		panic("digitCandidate: malformed decimal string")
	}
	return z
}

// byteCandidate builds a byte string whose low-order byte is always 255,
// so the value is odd. A two-byte candidate has its high byte forced to
// 1; longer candidates fill the leading positions with uniform bytes in
// [1, 255].
func byteCandidate(magnitude int, rng *weak.Rand) *big.Int {
	var buf []byte
	switch {
	case magnitude <= 1:
		buf = []byte{255}
	case magnitude == 2:
		buf = []byte{1, 255}
	default:
		buf = make([]byte, magnitude)
		for i := 0; i < magnitude-1; i++ {
			buf[i] = byte(1 + rng.Intn(255))
		}
		buf[magnitude-1] = 255
	}
	return new(big.Int).SetBytes(buf)
}

// NextPrime walks upward from an odd candidate in steps of two until the
// primality test accepts. The candidate is not modified.
func NextPrime(candidate *big.Int, rng *weak.Rand) *big.Int {
	z := new(big.Int).Set(candidate)
	for !IsPrimeRand(z, rng) {
		z.Add(z, two)
	}
	return z
}

// Prime returns a random prime of the requested number of decimal digits.
func Prime(magnitude int) *big.Int {
	return PrimeIn(magnitude, Digits)
}

// PrimeIn returns a random prime with magnitude measured in the given unit.
func PrimeIn(magnitude int, unit Unit) *big.Int {
	return PrimeRand(magnitude, unit, NewRand())
}

// PrimeRand is PrimeIn with an explicit random source.
func PrimeRand(magnitude int, unit Unit, rng *weak.Rand) *big.Int {
	return NextPrime(RandomCandidate(magnitude, unit, rng), rng)
}
