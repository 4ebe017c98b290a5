package paillier

import (
	"math/big"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// hexcodec.go implements the hex serialization spec.md §4.8 and §6 require:
// every big-integer field becomes an uppercase, `0x`-free hexadecimal text,
// and deserialization re-allocates fresh big integers from those texts.
// Serialization here is format-preserving but not validating — invariants
// like n = p*q are re-checked implicitly the next time the restored key or
// counter is used, not by the codec itself.

// PublicKeyHex is the hex-serialized mirror of a PublicKey (spec.md §3's
// KeyString). Its fields are owned by the caller until Dispose clears them.
type PublicKeyHex struct {
	N        string
	G        string
	NSquared string
}

// PrivateKeyHex is the hex-serialized mirror of a PrivateKey.
type PrivateKeyHex struct {
	P           string
	Q           string
	PSquared    string
	QSquared    string
	PInvMod2ToW string
	QInvMod2ToW string
	HSubP       string
	HSubQ       string
	QInv        string
}

func toHex(n *big.Int) string {
	return strings.ToUpper(n.Text(16))
}

func fromHex(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, dataError(nil, "%q is not a valid hexadecimal integer", s)
	}
	return n, nil
}

// SerializePublicKey encodes pub as a PublicKeyHex.
func SerializePublicKey(pub *PublicKey) (*PublicKeyHex, error) {
	if pub == nil {
		return nil, paramError("public key must not be nil")
	}
	return &PublicKeyHex{
		N:        toHex(pub.N),
		G:        toHex(pub.G),
		NSquared: toHex(pub.NSquared),
	}, nil
}

// DeserializePublicKey decodes h back into a PublicKey.
func DeserializePublicKey(h *PublicKeyHex) (*PublicKey, error) {
	if h == nil {
		return nil, paramError("hex key must not be nil")
	}
	n, err := fromHex(h.N)
	if err != nil {
		return nil, err
	}
	g, err := fromHex(h.G)
	if err != nil {
		return nil, err
	}
	nsquared, err := fromHex(h.NSquared)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: n, G: g, NSquared: nsquared}, nil
}

// Dispose clears every hex field of h.
func (h *PublicKeyHex) Dispose() {
	if h == nil {
		return
	}
	h.N, h.G, h.NSquared = "", "", ""
}

// SerializePrivateKey encodes priv as a PrivateKeyHex.
func SerializePrivateKey(priv *PrivateKey) (*PrivateKeyHex, error) {
	if priv == nil {
		return nil, paramError("private key must not be nil")
	}
	return &PrivateKeyHex{
		P:           toHex(priv.P),
		Q:           toHex(priv.Q),
		PSquared:    toHex(priv.PSquared),
		QSquared:    toHex(priv.QSquared),
		PInvMod2ToW: toHex(priv.PInvMod2ToW),
		QInvMod2ToW: toHex(priv.QInvMod2ToW),
		HSubP:       toHex(priv.HSubP),
		HSubQ:       toHex(priv.HSubQ),
		QInv:        toHex(priv.QInv),
	}, nil
}

// DeserializePrivateKey decodes h back into a PrivateKey. Every field is
// parsed even after an earlier one fails, so a caller sees every malformed
// field at once instead of one error per deserialization attempt.
func DeserializePrivateKey(h *PrivateKeyHex) (*PrivateKey, error) {
	if h == nil {
		return nil, paramError("hex key must not be nil")
	}

	priv := &PrivateKey{}
	fields := []struct {
		s    string
		dest **big.Int
	}{
		{h.P, &priv.P},
		{h.Q, &priv.Q},
		{h.PSquared, &priv.PSquared},
		{h.QSquared, &priv.QSquared},
		{h.PInvMod2ToW, &priv.PInvMod2ToW},
		{h.QInvMod2ToW, &priv.QInvMod2ToW},
		{h.HSubP, &priv.HSubP},
		{h.HSubQ, &priv.HSubQ},
		{h.QInv, &priv.QInv},
	}

	var result *multierror.Error
	for _, f := range fields {
		n, err := fromHex(f.s)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		*f.dest = n
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, dataError(err, "failed to decode private key from hex")
	}
	return priv, nil
}

// Dispose clears every hex field of h.
func (h *PrivateKeyHex) Dispose() {
	if h == nil {
		return
	}
	*h = PrivateKeyHex{}
}

// Serialize encodes c's ciphertext as a single uppercase hex string
// (spec.md §6: "a single hex string encoding c").
func (c *Counter) Serialize() (string, error) {
	if c == nil || c.C == nil {
		return "", paramError("counter must not be nil")
	}
	return toHex(c.C), nil
}

// DeserializeCounter restores a Counter from a hex-encoded ciphertext,
// stamping it with the PAILLIER_V1 version tag and a fresh LastUpdated
// (spec.md §6: "the version is restored and lastUpdated is set to now").
func DeserializeCounter(hexC string) (*Counter, error) {
	c, err := fromHex(hexC)
	if err != nil {
		return nil, err
	}
	return &Counter{Version: counterVersion, C: c, LastUpdated: nowSeconds()}, nil
}

// MarshalText implements encoding.TextMarshaler over the hex serialization
// above, so a Counter drops into encoding/json and fmt without a bespoke
// call.
func (c *Counter) MarshalText() ([]byte, error) {
	s, err := c.Serialize()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (c *Counter) UnmarshalText(text []byte) error {
	restored, err := DeserializeCounter(string(text))
	if err != nil {
		return err
	}
	*c = *restored
	return nil
}
