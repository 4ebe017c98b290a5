package paillier

import (
	"crypto/rand"
	"math/big"
	"testing"
)

// testKeyPair builds a small, fast-to-exercise KeyPair for unit tests. Its
// modulus (10007 * 10009 ≈ 1.0e8) is large enough to hold every plaintext
// used in this package's test scenarios while being cheap to exponentiate
// modulo n² thousands of times per test run.
func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	p := big.NewInt(10007)
	q := big.NewInt(10009)
	pair, err := newKeyPairFromPrimes(p, q, rand.Reader)
	if err != nil {
		t.Fatalf("failed to build test key pair: %v", err)
	}
	return pair
}

// testComparisonPrimes are two fixed, independently verified 160-bit primes,
// giving |n| = 320 bits.
var testComparisonPrimes = [2]string{
	"1182479485408984207372807925727890087574833110691",
	"1095121354959852898305440032932599357518663924039",
}

// testComparisonKeyPair builds the KeyPair PrivateCompare's tests run
// against. spec.md §3 requires 2*SECLEVEL+2 << |n| for the blind k to mask
// a-b instead of swallowing it; with PaillierRandomizerSeclevel = 128 that
// floor is 258 bits. testKeyPair's 27-bit modulus is far below it — k would
// dominate a-b entirely and every comparison would come out negative — so
// comparison tests need this wider fixture instead.
func testComparisonKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	p, ok := new(big.Int).SetString(testComparisonPrimes[0], 10)
	if !ok {
		t.Fatalf("malformed comparison test prime p")
	}
	q, ok := new(big.Int).SetString(testComparisonPrimes[1], 10)
	if !ok {
		t.Fatalf("malformed comparison test prime q")
	}
	pair, err := newKeyPairFromPrimes(p, q, rand.Reader)
	if err != nil {
		t.Fatalf("failed to build comparison test key pair: %v", err)
	}
	return pair
}
