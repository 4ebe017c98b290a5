package paillier

import (
	"math/big"
	"testing"
)

func TestInvMod2toWAndFastL(t *testing.T) {
	n := big.NewInt(11) // |n| = 4 bits
	ninv := invMod2toW(n)

	w := uint(n.BitLen())
	modulus := new(big.Int).Lsh(bigOne, w)
	check := new(big.Int).Mul(n, ninv)
	check.Mod(check, modulus)
	if check.Cmp(bigOne) != 0 {
		t.Fatalf("invMod2toW(%v) = %v is not a correct inverse mod 2^%d", n, ninv, w)
	}

	// L(u) = (u-1)/n for u = 1 + k*n.
	k := big.NewInt(7)
	u := new(big.Int).Mul(k, n)
	u.Add(u, bigOne)

	got := fastL(u, n, ninv)
	if got.Cmp(k) != 0 {
		t.Errorf("fastL(%v, %v) = %v, want %v", u, n, got, k)
	}
}

func TestFastCRT(t *testing.T) {
	p := big.NewInt(17)
	q := big.NewInt(23)
	qInv := qInvPrecompute(q, p)

	for g1 := int64(0); g1 < 17; g1++ {
		for g2 := int64(0); g2 < 23; g2++ {
			got := fastCRT(big.NewInt(g1), p, big.NewInt(g2), q, qInv)
			if new(big.Int).Mod(got, p).Int64() != g1 {
				t.Fatalf("fastCRT(%d,%d) mod p = %v, want %d", g1, g2, new(big.Int).Mod(got, p), g1)
			}
			if new(big.Int).Mod(got, q).Int64() != g2 {
				t.Fatalf("fastCRT(%d,%d) mod q = %v, want %d", g1, g2, new(big.Int).Mod(got, q), g2)
			}
		}
	}
}

func TestIsInZnStar(t *testing.T) {
	n := big.NewInt(15)
	cases := map[int64]bool{
		-1: false,
		0:  false, // gcd(0, 15) = 15
		1:  true,
		2:  true,
		3:  false, // gcd(3, 15) = 3
		14: true,
		15: false, // out of range
		16: false,
	}
	for v, want := range cases {
		got := isInZnStar(big.NewInt(v), n)
		if got != want {
			t.Errorf("isInZnStar(%d, %v) = %v, want %v", v, n, got, want)
		}
	}
}

func TestSelectGeneratorProducesMemberOfZnSquaredStar(t *testing.T) {
	pair := testKeyPair(t)
	if !isInZnSquaredStar(pair.Public.G, pair.Public.NSquared) {
		t.Errorf("generator %v is not in Z*_n2", pair.Public.G)
	}
}
