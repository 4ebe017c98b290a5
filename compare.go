package paillier

import (
	"math/big"
)

// Ordering names the result of a counter comparison, a small companion to
// the raw {-1, 0, 1} contract spec.md §4.7 specifies.
type Ordering int

const (
	// Less means the first operand decrypts to a smaller value.
	Less Ordering = -1
	// Equal means both operands decrypt to the same value.
	Equal Ordering = 0
	// Greater means the first operand decrypts to a larger value.
	Greater Ordering = 1
)

// PrivateCompare compares counters a and b, both encrypted under pub,
// returning -1/0/1 for a<b / a=b / a>b without ever revealing either
// plaintext to the caller beyond that sign (spec.md §4.7).
//
// The caller supplies both the public and the private key; this is the
// blinded variant used when the comparator itself must not learn a-b, only
// its sign.
func PrivateCompare(pub *PublicKey, priv *PrivateKey, a, b *Counter) (Ordering, error) {
	if pub == nil || priv == nil {
		return 0, paramError("public and private key must not be nil")
	}
	if a == nil || b == nil {
		return 0, paramError("both counters must not be nil")
	}

	random, err := rngReader()
	if err != nil {
		return 0, err
	}

	diff, err := Dup(pub, a)
	if err != nil {
		return 0, err
	}
	defer diff.Release()

	bound := new(big.Int).Lsh(bigOne, PaillierRandomizerSeclevel+2)
	k, err := cryptoRandInt(bound, random)
	if err != nil {
		return 0, cryptoError(err, "failed to sample comparison blind")
	}
	defer k.SetInt64(0)

	gk := new(big.Int).Exp(pub.G, k, pub.NSquared)
	diff.C.Mul(diff.C, gk)
	diff.C.Mod(diff.C, pub.NSquared)

	if err := reRandomize(pub, diff); err != nil {
		return 0, err
	}

	bInv := new(big.Int).ModInverse(b.C, pub.NSquared)
	if bInv == nil {
		return 0, cryptoError(nil, "ciphertext b has no inverse mod n squared")
	}
	diff.C.Mul(diff.C, bInv)
	diff.C.Mod(diff.C, pub.NSquared)

	m, err := decryptCRT(priv, diff)
	if err != nil {
		return 0, err
	}
	defer m.SetInt64(0)

	signed := new(big.Int).Sub(m, k)
	switch signed.Sign() {
	case -1:
		return Less, nil
	case 1:
		return Greater, nil
	default:
		return Equal, nil
	}
}

// Cmp compares a and b by decrypting each independently and comparing the
// plaintexts directly. privA decrypts a and privB decrypts b; if only one of
// the two is supplied, it is used for both. At least one private key is
// required, or Cmp fails with a PARAM error.
//
// Unlike PrivateCompare, Cmp reveals both plaintexts to the caller — it is
// the simpler, non-blinded variant spec.md §4.7 describes for callers that
// already hold (or are allowed to see) both values.
func Cmp(a, b *Counter, privA, privB *PrivateKey) (Ordering, error) {
	if a == nil || b == nil {
		return 0, paramError("both counters must not be nil")
	}
	if privA == nil && privB == nil {
		return 0, paramError("at least one private key must be supplied")
	}
	if privA == nil {
		privA = privB
	}
	if privB == nil {
		privB = privA
	}

	ma, err := Decrypt(privA, a)
	if err != nil {
		return 0, err
	}
	mb, err := Decrypt(privB, b)
	if err != nil {
		return 0, err
	}

	switch {
	case ma < mb:
		return Less, nil
	case ma > mb:
		return Greater, nil
	default:
		return Equal, nil
	}
}
