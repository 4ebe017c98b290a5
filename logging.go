package paillier

import (
	"sync"

	"go.uber.org/zap"
)

// currentLogger is the package-level logger for low-frequency structural
// events. The only event logged is key-generation completion (key size and
// elapsed time, in GenerateKeyPair); RNG seeding and deserialization failures
// are not logged. It never receives plaintext counter values, private-key
// material, or blinding factors as arguments.
//
// The default is nil, which logger() maps to zap's no-op logger, so an
// embedding application that never calls SetLogger sees no output.
var (
	logMu         sync.RWMutex
	currentLogger *zap.SugaredLogger
	nopLogger     = zap.NewNop().Sugar()
)

// SetLogger redirects this package's structural logging to l. Passing nil
// restores the default no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	logMu.Lock()
	defer logMu.Unlock()
	currentLogger = l
}

func logger() *zap.SugaredLogger {
	logMu.RLock()
	defer logMu.RUnlock()
	if currentLogger == nil {
		return nopLogger
	}
	return currentLogger
}
