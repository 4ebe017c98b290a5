package paillier

import (
	"math/big"
	"testing"
)

func TestNewCounterDecryptsToZero(t *testing.T) {
	pair := testKeyPair(t)

	c, err := NewCounter(pair.Public)
	if err != nil {
		t.Fatalf("NewCounter: %v", err)
	}
	got, err := Decrypt(pair.Private, c)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != 0 {
		t.Errorf("decrypted %d, want 0", got)
	}
}

func TestEncryptRejectsOutOfRangePlaintext(t *testing.T) {
	pair := testKeyPair(t)

	if _, err := Encrypt(pair.Public, big.NewInt(-1)); err == nil {
		t.Error("Encrypt(-1) should fail")
	}
	if _, err := Encrypt(pair.Public, new(big.Int).Set(pair.Public.N)); err == nil {
		t.Error("Encrypt(n) should fail, n is out of [0, n)")
	}
}

func TestEncryptRejectsNilArguments(t *testing.T) {
	pair := testKeyPair(t)

	if _, err := Encrypt(nil, big.NewInt(1)); err == nil {
		t.Error("Encrypt with nil public key should fail")
	}
	if _, err := Encrypt(pair.Public, nil); err == nil {
		t.Error("Encrypt with nil plaintext should fail")
	}
}

func TestDupPreservesPlaintextButChangesCiphertext(t *testing.T) {
	pair := testKeyPair(t)

	a, _ := Encrypt(pair.Public, big.NewInt(19))
	b, err := Dup(pair.Public, a)
	if err != nil {
		t.Fatalf("Dup: %v", err)
	}

	if a.C.Cmp(b.C) == 0 {
		t.Errorf("Dup produced an identical ciphertext")
	}

	got, err := Decrypt(pair.Private, b)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != 19 {
		t.Errorf("decrypted %d, want 19", got)
	}
}

func TestCopyOverwritesDestinationInPlace(t *testing.T) {
	pair := testKeyPair(t)

	from, _ := Encrypt(pair.Public, big.NewInt(5))
	to, _ := Encrypt(pair.Public, big.NewInt(999))

	if err := Copy(pair.Public, from, to); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	if from.C.Cmp(to.C) == 0 {
		t.Errorf("Copy left to with an identical ciphertext to from")
	}

	got, err := Decrypt(pair.Private, to)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != 5 {
		t.Errorf("decrypted %d, want 5", got)
	}
}

func TestReleaseScrubsCounter(t *testing.T) {
	pair := testKeyPair(t)
	c, _ := Encrypt(pair.Public, big.NewInt(1))

	c.Release()

	if c.C != nil {
		t.Errorf("Release left C non-nil: %v", c.C)
	}
	if c.Version != "" {
		t.Errorf("Release left Version set: %q", c.Version)
	}
	if c.LastUpdated != 0 {
		t.Errorf("Release left LastUpdated set: %d", c.LastUpdated)
	}
}

func TestReleaseOnNilCounterIsANoop(t *testing.T) {
	var c *Counter
	c.Release()
}
