package paillier

import (
	"crypto/rand"
	"io"
	"sync"
)

// seedBits is the amount of entropy drawn from the system source at Seed
// time, per spec.md §4.1.
const seedBits = 1024

// rngState is the process-wide seeded RNG handle every prime-generation,
// sampling, and blinding call in this package draws from. Its mutex guards
// seeding and the ready flag; reads from the returned io.Reader are not
// serialized by it, and rely on the default crypto/rand.Reader being safe for
// concurrent use.
type rngState struct {
	mu     sync.Mutex
	reader io.Reader
	ready  bool
}

var defaultRNG = &rngState{reader: rand.Reader}

// Seed draws seedBits of entropy from the platform's preferred
// non-blocking source and confirms the cryptographic RNG is ready to serve
// randomness. It must succeed before any key generation, encryption, or
// blinding call in this package is used.
//
// Seed is idempotent: calling it more than once simply re-confirms
// readiness, it does not discard previously generated keys or counters.
func Seed() error {
	return defaultRNG.seed()
}

func (s *rngState) seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, seedBits/8)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return osError(err, "failed to read %d bits of entropy from system source", seedBits)
	}
	// A readiness probe: draw one more byte to confirm the source can still
	// serve randomness after the initial seed read, rather than trusting a
	// single successful read to mean the RNG will stay ready.
	if _, err := io.ReadFull(s.reader, buf[:1]); err != nil {
		return cryptoError(err, "RNG failed readiness probe after seeding")
	}
	s.ready = true
	return nil
}

// source returns the seeded io.Reader for use by prime generation and
// sampling. If Seed has not yet succeeded in the process, source seeds
// lazily on first use rather than panicking, since a
// library caller who never calls Seed explicitly should still get a working
// (if unconfirmed) crypto/rand-backed source.
func (s *rngState) source() (io.Reader, error) {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()
	if !ready {
		if err := s.seed(); err != nil {
			return nil, err
		}
	}
	return s.reader, nil
}

// rngReader exposes the package's seeded randomness source to the rest of
// the package.
func rngReader() (io.Reader, error) {
	return defaultRNG.source()
}
