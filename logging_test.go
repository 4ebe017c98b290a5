package paillier

import (
	"testing"

	"go.uber.org/zap"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	if logger() != nopLogger {
		t.Error("logger() should return the shared no-op logger by default")
	}
}

func TestSetLoggerOverridesDefault(t *testing.T) {
	defer SetLogger(nil)

	custom := zap.NewExample().Sugar()
	SetLogger(custom)
	if logger() != custom {
		t.Error("logger() should return the logger passed to SetLogger")
	}
}
