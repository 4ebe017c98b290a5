package paillier

import (
	"math/big"
)

// Every homomorphic operation here follows the same shape: mutate c.C
// in place per the table in spec.md §4.5, then re-randomize and refresh
// LastUpdated. Touch is both an operation in its own right and the shared
// re-randomization step every other operation ends with.

// reRandomize multiplies c.C by r^n mod n² for a freshly sampled r in Z*_n,
// preserving the encrypted plaintext while refreshing the ciphertext's
// randomizer coset.
func reRandomize(pub *PublicKey, c *Counter) error {
	random, err := rngReader()
	if err != nil {
		return err
	}
	r, err := randNonZeroInZnStar(pub.N, random)
	if err != nil {
		return cryptoError(err, "failed to sample re-randomization factor")
	}
	rn := new(big.Int).Exp(r, pub.N, pub.NSquared)
	c.C.Mul(c.C, rn)
	c.C.Mod(c.C, pub.NSquared)
	return nil
}

func checkCounterOp(pub *PublicKey, c *Counter) error {
	if pub == nil {
		return paramError("public key must not be nil")
	}
	if c == nil || c.C == nil {
		return paramError("counter must not be nil")
	}
	return nil
}

// Touch re-randomizes c without changing its plaintext (spec.md §4.5's
// touch). Two successive calls produce, with overwhelming probability,
// distinct ciphertexts that still decrypt to the same value.
func Touch(pub *PublicKey, c *Counter) error {
	if err := checkCounterOp(pub, c); err != nil {
		return err
	}
	if err := reRandomize(pub, c); err != nil {
		return err
	}
	c.LastUpdated = nowSeconds()
	return nil
}

// Inc adds the non-negative constant a to c's encrypted plaintext in place:
// c ← c · g^a mod n², with a direct multiplication by g when a = 1.
func Inc(pub *PublicKey, c *Counter, a *big.Int) error {
	if err := checkCounterOp(pub, c); err != nil {
		return err
	}
	if a == nil {
		return paramError("increment must not be nil")
	}

	var ga *big.Int
	if a.Cmp(bigOne) == 0 {
		ga = pub.G
	} else {
		ga = new(big.Int).Exp(pub.G, a, pub.NSquared)
	}
	c.C.Mul(c.C, ga)
	c.C.Mod(c.C, pub.NSquared)

	if err := reRandomize(pub, c); err != nil {
		return err
	}
	c.LastUpdated = nowSeconds()
	return nil
}

// Dec subtracts the constant a from c's encrypted plaintext in place:
// c ← c · (g^a)⁻¹ mod n². There is no cryptographic prevention of
// underflow: if the true plaintext is below a, the decrypted result wraps
// modulo n (spec.md §4.5's note on subtraction).
func Dec(pub *PublicKey, c *Counter, a *big.Int) error {
	if err := checkCounterOp(pub, c); err != nil {
		return err
	}
	if a == nil {
		return paramError("decrement must not be nil")
	}

	ga := new(big.Int).Exp(pub.G, a, pub.NSquared)
	gaInv := new(big.Int).ModInverse(ga, pub.NSquared)
	if gaInv == nil {
		return cryptoError(nil, "g^a has no inverse mod n squared")
	}
	c.C.Mul(c.C, gaInv)
	c.C.Mod(c.C, pub.NSquared)

	if err := reRandomize(pub, c); err != nil {
		return err
	}
	c.LastUpdated = nowSeconds()
	return nil
}

// Add adds cB's encrypted plaintext into cA in place: cA ← cA · cB mod n².
func Add(pub *PublicKey, cA, cB *Counter) error {
	if err := checkCounterOp(pub, cA); err != nil {
		return err
	}
	if err := checkCounterOp(pub, cB); err != nil {
		return err
	}

	cA.C.Mul(cA.C, cB.C)
	cA.C.Mod(cA.C, pub.NSquared)

	if err := reRandomize(pub, cA); err != nil {
		return err
	}
	cA.LastUpdated = nowSeconds()
	return nil
}

// Sub subtracts cB's encrypted plaintext from cA in place: cA ← cA · cB⁻¹
// mod n².
func Sub(pub *PublicKey, cA, cB *Counter) error {
	if err := checkCounterOp(pub, cA); err != nil {
		return err
	}
	if err := checkCounterOp(pub, cB); err != nil {
		return err
	}

	cBInv := new(big.Int).ModInverse(cB.C, pub.NSquared)
	if cBInv == nil {
		return cryptoError(nil, "ciphertext has no inverse mod n squared")
	}
	cA.C.Mul(cA.C, cBInv)
	cA.C.Mod(cA.C, pub.NSquared)

	if err := reRandomize(pub, cA); err != nil {
		return err
	}
	cA.LastUpdated = nowSeconds()
	return nil
}

// Mul multiplies c's encrypted plaintext by the constant a in place:
// c ← c^a mod n².
func Mul(pub *PublicKey, c *Counter, a *big.Int) error {
	if err := checkCounterOp(pub, c); err != nil {
		return err
	}
	if a == nil {
		return paramError("scalar must not be nil")
	}

	c.C.Exp(c.C, a, pub.NSquared)

	if err := reRandomize(pub, c); err != nil {
		return err
	}
	c.LastUpdated = nowSeconds()
	return nil
}

// MulRand multiplies c's encrypted plaintext by a random secret scalar k of
// PaillierRandomizerSeclevel+2 bits, known to no one (spec.md §4.5's
// mul_rand). The caller learns nothing about k.
func MulRand(pub *PublicKey, c *Counter) error {
	if err := checkCounterOp(pub, c); err != nil {
		return err
	}

	random, err := rngReader()
	if err != nil {
		return err
	}
	bound := new(big.Int).Lsh(bigOne, PaillierRandomizerSeclevel+2)
	k, err := cryptoRandInt(bound, random)
	if err != nil {
		return cryptoError(err, "failed to sample random scalar")
	}

	c.C.Exp(c.C, k, pub.NSquared)
	k.SetInt64(0)

	if err := reRandomize(pub, c); err != nil {
		return err
	}
	c.LastUpdated = nowSeconds()
	return nil
}
