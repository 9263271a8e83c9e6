package numtheory

import (
	"math/big"
	weak "math/rand"
	"testing"
	"time"
)

func TestGCD(t *testing.T) {
	for _, c := range []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{5, 0, 5},
		{0, 5, 5},
		{1, 1, 1},
		{17, 31, 1},
		{3120, 7, 1},
		{3120, 6, 6},
	} {
		got := GCD(big.NewInt(c.a), big.NewInt(c.b))
		if got.Int64() != c.want {
			t.Errorf("GCD(%v, %v) == %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestGCDCommutative(t *testing.T) {
	rng := weak.New(weak.NewSource(time.Now().UnixNano()))
	for i := 0; i < 100; i++ {
		a := big.NewInt(rng.Int63())
		b := big.NewInt(rng.Int63())
		if g1, g2 := GCD(a, b), GCD(b, a); g1.Cmp(g2) != 0 {
			t.Errorf("GCD(%v, %v) == %v, GCD(%v, %v) == %v",
				a, b, g1, b, a, g2)
		}
	}
}

func TestGCDLarge(t *testing.T) {
	a, _ := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	b, _ := new(big.Int).SetString("987654321098765432109876543210", 10)
	want := GCD(b, a)
	if got := GCD(a, b); got.Cmp(want) != 0 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := GCD(a, a); got.Cmp(a) != 0 {
		t.Errorf("GCD(a, a) == %v, want %v", got, a)
	}
}

func TestExtGCDIdentity(t *testing.T) {
	rng := weak.New(weak.NewSource(time.Now().UnixNano()))
	for i := 0; i < 100; i++ {
		a := big.NewInt(rng.Int63())
		b := big.NewInt(1 + rng.Int63n(1<<40))
		x, y, err := ExtGCD(a, b)
		if err != nil {
			t.Fatal(err)
		}
		sum := new(big.Int).Mul(a, x)
		sum.Add(sum, new(big.Int).Mul(b, y))
		if want := GCD(a, b); sum.Cmp(want) != 0 {
			t.Errorf("ExtGCD(%v, %v): %v*%v + %v*%v == %v, want %v",
				a, b, a, x, b, y, sum, want)
		}
	}
}

func TestExtGCDBaseCase(t *testing.T) {
	x, y, err := ExtGCD(big.NewInt(12), big.NewInt(4))
	if err != nil {
		t.Fatal(err)
	}
	if x.Sign() != 0 || y.Cmp(one) != 0 {
		t.Errorf("got (%v, %v), want (0, 1)", x, y)
	}
}

func TestExtGCDZeroDivisor(t *testing.T) {
	if _, _, err := ExtGCD(big.NewInt(5), big.NewInt(0)); err != ErrZeroDivisor {
		t.Errorf("got %v, want %v", err, ErrZeroDivisor)
	}
}

func TestExpMod(t *testing.T) {
	for _, c := range []struct {
		base, modulus, exponent, want int64
	}{
		{2, 1000, 10, 24},
		{3, 7, 3, 6},
		{10, 7, 1, 3},
		{5, 13, 12, 1},
		{0, 97, 5, 0},
	} {
		got, err := ExpMod(big.NewInt(c.base), big.NewInt(c.modulus), big.NewInt(c.exponent))
		if err != nil {
			t.Fatal(err)
		}
		if got.Int64() != c.want {
			t.Errorf("ExpMod(%v, %v, %v) == %v, want %v",
				c.base, c.modulus, c.exponent, got, c.want)
		}
	}
}

// TestExpModRoundTrip exercises the fixed key pair (N, E, D) =
// (6097, 7, 4243): encrypting 4 and decrypting the result must give 4 back.
func TestExpModRoundTrip(t *testing.T) {
	n := big.NewInt(6097)
	ciphertext, err := ExpMod(big.NewInt(4), n, big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	plaintext, err := ExpMod(ciphertext, n, big.NewInt(4243))
	if err != nil {
		t.Fatal(err)
	}
	if plaintext.Int64() != 4 {
		t.Errorf("got %v, want 4", plaintext)
	}
}

func TestExpModLarge(t *testing.T) {
	base, _ := new(big.Int).SetString("123456789123456789123456789", 10)
	modulus, _ := new(big.Int).SetString("671998030559713968361666935769", 10)
	exponent := new(big.Int).Set(modulus)
	got, err := ExpMod(base, modulus, exponent)
	if err != nil {
		t.Fatal(err)
	}
	if want := new(big.Int).Exp(base, exponent, modulus); got.Cmp(want) != 0 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExpModContract(t *testing.T) {
	if _, err := ExpMod(big.NewInt(4), big.NewInt(7), big.NewInt(0)); err != ErrNonPositiveExponent {
		t.Errorf("got %v, want %v", err, ErrNonPositiveExponent)
	}
	if _, err := ExpMod(big.NewInt(4), big.NewInt(7), big.NewInt(-3)); err != ErrNonPositiveExponent {
		t.Errorf("got %v, want %v", err, ErrNonPositiveExponent)
	}
	if _, err := ExpMod(big.NewInt(4), big.NewInt(0), big.NewInt(3)); err != ErrZeroDivisor {
		t.Errorf("got %v, want %v", err, ErrZeroDivisor)
	}
}
