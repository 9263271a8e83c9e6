package prime

import (
	"math/big"
	"testing"
)

// trialDivision is the exact oracle the table tests are checked against.
func trialDivision(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeBelow100(t *testing.T) {
	for n := int64(0); n < 100; n++ {
		want := trialDivision(n)
		if got := IsPrime(big.NewInt(n)); got != want {
			t.Errorf("IsPrime(%v) == %v, want %v", n, got, want)
		}
	}
}

func TestIsPrimeLiterals(t *testing.T) {
	for _, c := range []struct {
		s    string
		want bool
	}{
		{"671998030559713968361666935769", true},
		{"671998030559713968361666935763", false},
		{"101", true},
		{"10601", true},
		{"10001", false}, // 73 * 137
		{"121", false},
	} {
		d, ok := new(big.Int).SetString(c.s, 10)
		if !ok {
			t.Fatalf("bad literal %q", c.s)
		}
		if got := IsPrime(d); got != c.want {
			t.Errorf("IsPrime(%v) == %v, want %v", c.s, got, c.want)
		}
	}
}

func TestIsPrimeAgreesWithStdlib(t *testing.T) {
	rng := NewRand()
	for i := 0; i < 20; i++ {
		d := RandomCandidate(10, Digits, rng)
		want := d.ProbablyPrime(20)
		if got := IsPrimeRand(d, rng); got != want {
			t.Errorf("IsPrime(%v) == %v, stdlib says %v", d, got, want)
		}
	}
}
