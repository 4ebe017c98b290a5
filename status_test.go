package paillier

import (
	"errors"
	"testing"
)

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:       "OK",
		StatusParam:    "PARAM",
		StatusMem:      "MEM",
		StatusCrypto:   "CRYPTO",
		StatusOS:       "OS",
		StatusData:     "DATA",
		StatusOverflow: "OVERFLOW",
		Status(99):     "UNKNOWN",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestStatusErrorCarriesStatusAndMessage(t *testing.T) {
	err := paramError("plaintext %v is too large", 42)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatal("paramError did not return a *StatusError")
	}
	if statusErr.Status != StatusParam {
		t.Errorf("Status = %v, want StatusParam", statusErr.Status)
	}
	if statusErr.Error() == "" {
		t.Error("Error() returned an empty string")
	}
}

func TestStatusErrorUnwrapsToCause(t *testing.T) {
	cause := errors.New("underlying RNG failure")
	err := cryptoError(cause, "blind sampling failed")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatal("cryptoError did not return a *StatusError")
	}
	if statusErr.Status != StatusCrypto {
		t.Errorf("Status = %v, want StatusCrypto", statusErr.Status)
	}
	if !errors.Is(err, statusErr.Unwrap()) {
		t.Error("Unwrap did not expose a cause errors.Is can match against")
	}
}

func TestEachHelperProducesItsOwnStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Status
	}{
		{"paramError", paramError("x"), StatusParam},
		{"cryptoError", cryptoError(nil, "x"), StatusCrypto},
		{"osError", osError(nil, "x"), StatusOS},
		{"dataError", dataError(nil, "x"), StatusData},
		{"overflowError", overflowError("x"), StatusOverflow},
	}
	for _, c := range cases {
		var statusErr *StatusError
		if !errors.As(c.err, &statusErr) {
			t.Errorf("%s did not return a *StatusError", c.name)
			continue
		}
		if statusErr.Status != c.want {
			t.Errorf("%s: Status = %v, want %v", c.name, statusErr.Status, c.want)
		}
	}
}
