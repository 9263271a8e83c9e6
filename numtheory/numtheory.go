// Package numtheory provides the integer routines underlying the RSA
// operations: the Euclidean algorithm, Bézout coefficients, and modular
// exponentiation by repeated squaring.
package numtheory

import (
	"math/big"

	"github.com/pkg/errors"
)

var one = big.NewInt(1)

var (
	// ErrZeroDivisor reports a division by zero that would otherwise
	// crash deep inside a recursion.
	ErrZeroDivisor = errors.New("numtheory: division by zero")

	// ErrNonPositiveExponent reports an exponent below one, for which
	// the repeated-squaring recursion has no base case.
	ErrNonPositiveExponent = errors.New("numtheory: exponent must be at least 1")
)

// GCD returns the greatest common divisor of two non-negative integers.
// The operands are swapped so the larger is processed first; GCD(a, 0) = a.
// Neither input is modified.
func GCD(a, b *big.Int) *big.Int {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	return GCD(b, new(big.Int).Mod(a, b))
}

// ExtGCD returns Bézout coefficients x, y satisfying a*x + b*y = gcd(a, b).
// The gcd itself is not returned. A zero b is a contract violation and
// yields ErrZeroDivisor.
func ExtGCD(a, b *big.Int) (*big.Int, *big.Int, error) {
	if b.Sign() == 0 {
		return nil, nil, ErrZeroDivisor
	}
	x, y := extGCD(a, b)
	return x, y, nil
}

// extGCD performs the recursive back-substitution. The base case
// a mod b = 0 keeps the divisor nonzero at every level below the first.
func extGCD(a, b *big.Int) (*big.Int, *big.Int) {
	quo, rem := new(big.Int).QuoRem(a, b, new(big.Int))
	if rem.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	x, y := extGCD(b, rem)
	return y, x.Sub(x, new(big.Int).Mul(y, quo))
}

// ExpMod returns base^exponent mod modulus by repeated squaring. The
// exponent must be at least 1 and the modulus positive; violations are
// reported as ErrNonPositiveExponent and ErrZeroDivisor.
func ExpMod(base, modulus, exponent *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, ErrZeroDivisor
	}
	if exponent.Cmp(one) < 0 {
		return nil, ErrNonPositiveExponent
	}
	z := expMod(new(big.Int).Set(base), modulus, new(big.Int).Set(exponent))
	return new(big.Int).Mod(z, modulus), nil
}

// expMod recurses with an even exponent squaring the base and halving,
// and an odd exponent multiplying once and decrementing. Only squarings
// are reduced; the caller reduces the final product.
func expMod(base, modulus, exponent *big.Int) *big.Int {
	if exponent.Cmp(one) == 0 {
		return base
	}
	if exponent.Bit(0) == 0 {
		square := new(big.Int).Mul(base, base)
		square.Mod(square, modulus)
		return expMod(square, modulus, exponent.Rsh(exponent, 1))
	}
	z := expMod(base, modulus, exponent.Sub(exponent, one))
	return new(big.Int).Mul(z, base)
}
