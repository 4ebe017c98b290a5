package paillier

import (
	"io"
	"math/big"
)

// The Paillier mathematical kernel: the L function, its masked-multiplication
// fast path, CRT recombination, and the membership tests and generator
// selection that the rest of the package builds on. Apart from the generator
// samplers, which draw from the io.Reader they are given, every function here
// is pure: it takes big.Int inputs and returns new big.Int outputs, touching
// no package-level state, so callers are responsible for scrubbing anything
// sensitive they pass in or get back.

// invMod2toW returns n⁻¹ mod 2^|n|, where |n| is the bit length of n. L's
// fast path (fastL) uses this precomputed inverse to turn a division by n
// into a masked multiplication.
func invMod2toW(n *big.Int) *big.Int {
	w := uint(n.BitLen())
	modulus := new(big.Int).Lsh(bigOne, w)
	return new(big.Int).ModInverse(n, modulus)
}

// fastL computes L(u) = (u-1)/n for u ≡ 1 (mod n), using the precomputed
// ninvmod2tow = n⁻¹ mod 2^|n| instead of an explicit big.Int division.
//
// (u-1)/n ≡ (u-1)·n⁻¹ (mod 2^w) and the true quotient fits in w bits, so
// reducing the masked product mod 2^w recovers it exactly.
func fastL(u, n, ninvmod2tow *big.Int) *big.Int {
	w := uint(n.BitLen())
	modulus := new(big.Int).Lsh(bigOne, w)
	t := new(big.Int).Sub(u, bigOne)
	t.Mod(t, modulus)
	t.Mul(t, ninvmod2tow)
	return t.Mod(t, modulus)
}

// hConstant returns (L_p(g^(p-1) mod p²))⁻¹ mod p, the precomputed constant
// that lets decryption recover m_p in one multiplication per modulus instead
// of a second exponentiation.
func hConstant(g, p, psquared, pinvmod2tow *big.Int) *big.Int {
	t := new(big.Int).Exp(g, new(big.Int).Sub(p, bigOne), psquared)
	l := fastL(t, p, pinvmod2tow)
	return new(big.Int).ModInverse(l, p)
}

// fastCRT returns the unique g in [0, p*q) such that g ≡ g1 (mod p) and
// g ≡ g2 (mod q), given the precomputed qInv = (q mod p)⁻¹ mod p.
func fastCRT(g1, p, g2, q, qInv *big.Int) *big.Int {
	t := new(big.Int).Sub(g1, g2)
	if t.Sign() < 0 {
		t.Add(t, p)
	}
	h := new(big.Int).Mul(t, qInv)
	h.Mod(h, p)
	g := new(big.Int).Mul(q, h)
	return g.Add(g, g2)
}

// qInvPrecompute returns (q mod p)⁻¹ mod p, the constant fastCRT needs on
// every call.
func qInvPrecompute(q, p *big.Int) *big.Int {
	qModP := new(big.Int).Mod(q, p)
	return new(big.Int).ModInverse(qModP, p)
}

// isInZnStar reports whether a is a member of the multiplicative group of
// integers modulo n that are coprime to n: 0 <= a < n and gcd(a, n) = 1.
func isInZnStar(a, n *big.Int) bool {
	if a.Sign() < 0 || a.Cmp(n) >= 0 {
		return false
	}
	return new(big.Int).GCD(nil, nil, a, n).Cmp(bigOne) == 0
}

// isInZnSquaredStar reports whether a is a member of Z*_{n²}: 0 <= a < n²
// and gcd(a, n²) = 1.
func isInZnSquaredStar(a, nsquared *big.Int) bool {
	return isInZnStar(a, nsquared)
}

// selectFactorGenerator samples a uniformly random element g of Z*_{psquared}
// whose image has the order Paillier's generator requires: g^(p-1) mod
// psquared must not be 1, otherwise the induced CRT generator has the wrong
// order and decryption cannot discriminate between plaintexts.
func selectFactorGenerator(p, psquared *big.Int, random io.Reader) (*big.Int, error) {
	pMinus1 := new(big.Int).Sub(p, bigOne)
	for {
		g, err := randBigInt(psquared, random)
		if err != nil {
			return nil, cryptoError(err, "failed to sample generator candidate")
		}
		if !isInZnSquaredStar(g, psquared) {
			continue
		}
		t := new(big.Int).Exp(g, pMinus1, psquared)
		if t.Cmp(bigOne) == 0 {
			continue
		}
		return g, nil
	}
}

// selectGenerator builds the Paillier generator g per spec.md §4.3: a
// factor-wise good element is drawn independently modulo p² and q², then
// recombined with fastCRT. This is markedly faster than rejection-sampling
// directly in Z*_{n²}.
func selectGenerator(p, psquared, q, qsquared *big.Int, random io.Reader) (*big.Int, error) {
	gp, err := selectFactorGenerator(p, psquared, random)
	if err != nil {
		return nil, err
	}
	gq, err := selectFactorGenerator(q, qsquared, random)
	if err != nil {
		return nil, err
	}
	inv := qInvPrecompute(qsquared, psquared)
	return fastCRT(gp, psquared, gq, qsquared, inv), nil
}

// randBigInt samples a uniformly random integer in [0, max) from random,
// treating any draw failure as a CRYPTO-class error per spec.md §9's
// resolution of the "RNG check" open question: a failed draw must always be
// surfaced, never silently treated as success.
func randBigInt(max *big.Int, random io.Reader) (*big.Int, error) {
	return cryptoRandInt(max, random)
}
