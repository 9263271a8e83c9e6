package ecrypt

import (
	"math/big"
	weak "math/rand"
	"strconv"

	"github.com/pkg/errors"

	"github.com/erlware-deprecated/ecrypt/numtheory"
	"github.com/erlware-deprecated/ecrypt/prime"
)

// ErrShortPlaintext reports a decrypted value too short to have carried
// a two-digit pad.
var ErrShortPlaintext = errors.New("ecrypt: plaintext too short to strip pad")

// Encrypt raises msg to the public exponent modulo n. There is no
// chunking; the caller must keep msg below the modulus.
func Encrypt(msg, n, e *big.Int) (*big.Int, error) {
	return numtheory.ExpMod(msg, n, e)
}

// Decrypt raises msg to the private exponent modulo n.
func Decrypt(msg, n, d *big.Int) (*big.Int, error) {
	return numtheory.ExpMod(msg, n, d)
}

// PaddedEncrypt appends a random two-digit decimal pad to msg before
// encrypting. The pad is numeric obfuscation only, not a secure padding
// construction.
func PaddedEncrypt(msg, n, e *big.Int) (*big.Int, error) {
	return PaddedEncryptRand(msg, n, e, prime.NewRand())
}

// PaddedEncryptRand is PaddedEncrypt with an explicit random source.
func PaddedEncryptRand(msg, n, e *big.Int, rng *weak.Rand) (*big.Int, error) {
	pad := 10 + rng.Intn(90) // always two decimal digits
	padded, ok := new(big.Int).SetString(msg.String()+strconv.Itoa(pad), 10)
	if !ok {
		return nil, errors.Errorf("PaddedEncrypt: malformed padded value for %v", msg)
	}
	return Encrypt(padded, n, e)
}

// PaddedDecrypt decrypts msg and strips the two-digit pad. Decrypted
// values shorter than three decimal digits cannot have carried a pad and
// yield ErrShortPlaintext.
func PaddedDecrypt(msg, n, d *big.Int) (*big.Int, error) {
	z, err := Decrypt(msg, n, d)
	if err != nil {
		return nil, err
	}
	s := z.String()
	if len(s) < 3 {
		return nil, ErrShortPlaintext
	}
	z, ok := new(big.Int).SetString(s[:len(s)-2], 10)
	if !ok {
		return nil, errors.Errorf("PaddedDecrypt: malformed plaintext %q", s)
	}
	return z, nil
}
