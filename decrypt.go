package paillier

import (
	"math/big"
	"strconv"
)

// decryptCRT is the shared CRT decryption kernel of spec.md §4.6: decrypt
// modulo p and q independently using the precomputed h constants, then
// recombine with fastCRT. It returns the full-range plaintext m in [0, n)
// with no uint64 narrowing, since PrivateCompare needs the unbounded value
// and Decrypt needs the bounded one.
func decryptCRT(priv *PrivateKey, c *Counter) (*big.Int, error) {
	if priv == nil {
		return nil, paramError("private key must not be nil")
	}
	if c == nil || c.C == nil {
		return nil, paramError("counter must not be nil")
	}

	tp := new(big.Int).Mod(c.C, priv.PSquared)
	tp.Exp(tp, new(big.Int).Sub(priv.P, bigOne), priv.PSquared)
	mp := fastL(tp, priv.P, priv.PInvMod2ToW)
	mp.Mul(mp, priv.HSubP)
	mp.Mod(mp, priv.P)

	tq := new(big.Int).Mod(c.C, priv.QSquared)
	tq.Exp(tq, new(big.Int).Sub(priv.Q, bigOne), priv.QSquared)
	mq := fastL(tq, priv.Q, priv.QInvMod2ToW)
	mq.Mul(mq, priv.HSubQ)
	mq.Mod(mq, priv.Q)

	m := fastCRT(mp, priv.P, mq, priv.Q, priv.QInv)

	tp.SetInt64(0)
	tq.SetInt64(0)
	mp.SetInt64(0)
	mq.SetInt64(0)

	return m, nil
}

// Decrypt recovers c's plaintext as a uint64 via decryptCRT. The counter
// itself is not modified and remains usable regardless of the outcome.
func Decrypt(priv *PrivateKey, c *Counter) (uint64, error) {
	m, err := decryptCRT(priv, c)
	if err != nil {
		return 0, err
	}
	defer m.SetInt64(0)

	decimal := m.String()
	value, err := strconv.ParseUint(decimal, 10, 64)
	if err != nil {
		return 0, overflowError("decrypted value %s exceeds uint64 range", decimal)
	}
	return value, nil
}
