package paillier

import (
	"math/big"
	"testing"
)

// TestScenarioSerializeCounterRoundTrip is spec.md §8 scenario 6: encrypt 0,
// inc by 42, serialize, restore from the hex string, decrypt ⇒ 42.
func TestScenarioSerializeCounterRoundTrip(t *testing.T) {
	pair := testKeyPair(t)

	c, err := NewCounter(pair.Public)
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}
	if err := Inc(pair.Public, c, big.NewInt(42)); err != nil {
		t.Fatalf("Inc: %v", err)
	}

	hexC, err := c.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	restored, err := DeserializeCounter(hexC)
	if err != nil {
		t.Fatalf("DeserializeCounter: %v", err)
	}

	got, err := Decrypt(pair.Private, restored)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != 42 {
		t.Errorf("decrypted %d after round trip, want 42", got)
	}
}

func TestPublicKeyHexRoundTrip(t *testing.T) {
	pair := testKeyPair(t)

	h, err := SerializePublicKey(pair.Public)
	if err != nil {
		t.Fatalf("SerializePublicKey: %v", err)
	}
	restored, err := DeserializePublicKey(h)
	if err != nil {
		t.Fatalf("DeserializePublicKey: %v", err)
	}

	if restored.N.Cmp(pair.Public.N) != 0 {
		t.Errorf("N round trip mismatch: got %v, want %v", restored.N, pair.Public.N)
	}
	if restored.G.Cmp(pair.Public.G) != 0 {
		t.Errorf("G round trip mismatch: got %v, want %v", restored.G, pair.Public.G)
	}
	if restored.NSquared.Cmp(pair.Public.NSquared) != 0 {
		t.Errorf("NSquared round trip mismatch: got %v, want %v", restored.NSquared, pair.Public.NSquared)
	}
}

func TestPrivateKeyHexRoundTrip(t *testing.T) {
	pair := testKeyPair(t)

	h, err := SerializePrivateKey(pair.Private)
	if err != nil {
		t.Fatalf("SerializePrivateKey: %v", err)
	}
	restored, err := DeserializePrivateKey(h)
	if err != nil {
		t.Fatalf("DeserializePrivateKey: %v", err)
	}

	fields := []struct {
		name      string
		got, want *big.Int
	}{
		{"P", restored.P, pair.Private.P},
		{"Q", restored.Q, pair.Private.Q},
		{"PSquared", restored.PSquared, pair.Private.PSquared},
		{"QSquared", restored.QSquared, pair.Private.QSquared},
		{"PInvMod2ToW", restored.PInvMod2ToW, pair.Private.PInvMod2ToW},
		{"QInvMod2ToW", restored.QInvMod2ToW, pair.Private.QInvMod2ToW},
		{"HSubP", restored.HSubP, pair.Private.HSubP},
		{"HSubQ", restored.HSubQ, pair.Private.HSubQ},
		{"QInv", restored.QInv, pair.Private.QInv},
	}
	for _, f := range fields {
		if f.got.Cmp(f.want) != 0 {
			t.Errorf("%s round trip mismatch: got %v, want %v", f.name, f.got, f.want)
		}
	}
}

func TestDeserializePrivateKeyRejectsMalformedFields(t *testing.T) {
	h := &PrivateKeyHex{
		P: "not-hex",
		Q: "also-not-hex",
	}
	if _, err := DeserializePrivateKey(h); err == nil {
		t.Fatal("DeserializePrivateKey with malformed fields should fail")
	}
}

func TestCounterTextMarshalUnmarshalRoundTrip(t *testing.T) {
	pair := testKeyPair(t)
	c, _ := Encrypt(pair.Public, big.NewInt(13))

	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var restored Counter
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}

	got, err := Decrypt(pair.Private, &restored)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != 13 {
		t.Errorf("decrypted %d, want 13", got)
	}
}

func TestDeserializeCounterRejectsMalformedHex(t *testing.T) {
	if _, err := DeserializeCounter("not hex at all"); err == nil {
		t.Error("DeserializeCounter with malformed hex should fail")
	}
}

func TestPublicKeyHexDisposeClearsFields(t *testing.T) {
	pair := testKeyPair(t)
	h, _ := SerializePublicKey(pair.Public)
	h.Dispose()
	if h.N != "" || h.G != "" || h.NSquared != "" {
		t.Errorf("Dispose left fields set: %+v", h)
	}
}
