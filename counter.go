package paillier

import (
	"io"
	"math/big"
	"time"
)

// counterVersion identifies the wire format a Counter serializes to and
// restores from (spec.md §6).
const counterVersion = "PAILLIER_V1"

// Counter is an encrypted integer counter (spec.md §3): a ciphertext c in
// Z*_{n²} under some PublicKey, plus a format tag and the wall-clock second
// of its last mutation. Every homomorphic operation in homomorphic.go
// mutates C in place and refreshes LastUpdated; Release clears it.
//
// A Counter borrows its PublicKey rather than owning it — the key must
// outlive every counter encrypted under it (spec.md §9).
type Counter struct {
	Version     string
	C           *big.Int
	LastUpdated int64
}

// Encrypt encrypts an arbitrary plaintext m in [0, n) into a fresh Counter
// under pub. c = g^m * r^n mod n² for a freshly sampled randomizer r in
// Z*_n (spec.md §4.4).
func Encrypt(pub *PublicKey, m *big.Int) (*Counter, error) {
	if pub == nil || m == nil {
		return nil, paramError("public key and plaintext must not be nil")
	}
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, paramError("plaintext %v is out of allowed space [0, %v)", m, pub.N)
	}

	random, err := rngReader()
	if err != nil {
		return nil, err
	}

	c, err := encryptWith(pub, m, random)
	if err != nil {
		return nil, err
	}

	return &Counter{Version: counterVersion, C: c, LastUpdated: nowSeconds()}, nil
}

// NewCounter creates a counter encrypting the initial plaintext m = 0
// (spec.md §4.4's new_counter).
func NewCounter(pub *PublicKey) (*Counter, error) {
	if pub == nil {
		return nil, paramError("public key must not be nil")
	}
	return Encrypt(pub, bigZero)
}

// encryptWith is the shared encryption kernel: t1 = g^m mod n², t2 = r^n mod
// n², c = t1*t2 mod n².
func encryptWith(pub *PublicKey, m *big.Int, random io.Reader) (*big.Int, error) {
	r, err := randNonZeroInZnStar(pub.N, random)
	if err != nil {
		return nil, cryptoError(err, "failed to sample encryption randomizer")
	}
	t1 := new(big.Int).Exp(pub.G, m, pub.NSquared)
	t2 := new(big.Int).Exp(r, pub.N, pub.NSquared)
	c := new(big.Int).Mul(t1, t2)
	return c.Mod(c, pub.NSquared), nil
}

// Release zeroes the counter's sensitive ciphertext field. Go has no manual
// free; "releasing" a counter here means scrubbing what it held and letting
// the garbage collector reclaim the struct once the caller drops its last
// reference (spec.md §9's resolution of the free_counter ownership question).
func (c *Counter) Release() {
	if c == nil {
		return
	}
	if c.C != nil {
		c.C.SetInt64(0)
	}
	c.C = nil
	c.Version = ""
	c.LastUpdated = 0
}

// Dup allocates a new counter encrypting the same plaintext as from, then
// re-randomizes it (spec.md §4.4). Re-randomization is mandatory: two
// byte-identical ciphertexts would leak that they encrypt the same
// plaintext.
func Dup(pub *PublicKey, from *Counter) (*Counter, error) {
	if pub == nil || from == nil {
		return nil, paramError("public key and source counter must not be nil")
	}
	to := &Counter{
		Version: from.Version,
		C:       new(big.Int).Set(from.C),
	}
	if err := Touch(pub, to); err != nil {
		return nil, err
	}
	return to, nil
}

// Copy is the destination-provided variant of Dup: it overwrites to's
// ciphertext with a re-randomized copy of from's, under the same
// mandatory-re-randomization rule.
func Copy(pub *PublicKey, from, to *Counter) error {
	if pub == nil || from == nil || to == nil {
		return paramError("public key, source, and destination counters must not be nil")
	}
	to.Version = from.Version
	to.C = new(big.Int).Set(from.C)
	return Touch(pub, to)
}

func nowSeconds() int64 {
	return time.Now().Unix()
}
