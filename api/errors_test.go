package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/hioload-wire/api"
	"github.com/momentics/hioload-wire/codec"
	"github.com/momentics/hioload-wire/control"
	"github.com/momentics/hioload-wire/protocol"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := api.NewError(api.ErrCodeMalformed, "malformed")
	derived := sentinel.WithContext("offset", 7)

	if !errors.Is(derived, sentinel) {
		t.Fatal("derived error should match its sentinel")
	}
	if errors.Is(derived, api.NewError(api.ErrCodeFrame, "frame")) {
		t.Fatal("different codes must not match")
	}
	if len(sentinel.Context) != 0 {
		t.Fatalf("sentinel mutated: %v", sentinel.Context)
	}
	wrapped := fmt.Errorf("outer: %w", derived)
	if !errors.Is(wrapped, sentinel) {
		t.Fatal("wrapped error should match")
	}
}

func TestCodeOf(t *testing.T) {
	if got := api.CodeOf(nil); got != api.ErrCodeOK {
		t.Errorf("CodeOf(nil) = %v", got)
	}
	err := fmt.Errorf("x: %w", api.NewError(api.ErrCodeMissingKey, "missing"))
	if got := api.CodeOf(err); got != api.ErrCodeMissingKey {
		t.Errorf("CodeOf = %v, want missing_key", got)
	}
	if got := api.CodeOf(errors.New("plain")); got != api.ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %v", got)
	}
	if api.ErrCodeFragmentedOpcode.String() != "fragmented_opcode" {
		t.Errorf("unexpected name %q", api.ErrCodeFragmentedOpcode.String())
	}
}

func TestErrorMessageWithContext(t *testing.T) {
	err := api.NewError(api.ErrCodeFrame, "frame too short").WithContext("need", 2)
	if got := err.Error(); got != "frame too short (context: map[need:2])" {
		t.Errorf("Error() = %q", got)
	}
}

func TestInvalidInputErrorsAreDistinct(t *testing.T) {
	_, b64Err := codec.Base64Decode("!!!!")
	_, cfgErr := control.ParseConfig([]byte(`{"listen_addr":""}`))
	if b64Err == nil || cfgErr == nil {
		t.Fatalf("expected errors, got %v / %v", b64Err, cfgErr)
	}

	cases := []struct {
		name string
		err  error
		own  error
	}{
		{"base64", b64Err, codec.ErrInvalidBase64},
		{"config", cfgErr, nil},
		{"upgrade", protocol.ErrInvalidUpgradeHeaders.WithContext("header", "Upgrade"), protocol.ErrInvalidUpgradeHeaders},
	}
	others := []error{codec.ErrInvalidBase64, protocol.ErrInvalidUpgradeHeaders}
	for _, c := range cases {
		if c.own != nil && !errors.Is(c.err, c.own) {
			t.Errorf("%s: does not match its own sentinel", c.name)
		}
		for _, o := range others {
			if o != c.own && errors.Is(c.err, o) {
				t.Errorf("%s: matches unrelated %v", c.name, o)
			}
		}
	}

	codes := []api.ErrorCode{api.CodeOf(b64Err), api.CodeOf(cfgErr), api.CodeOf(protocol.ErrInvalidUpgradeHeaders)}
	want := []string{"invalid_base64", "invalid_config", "invalid_upgrade"}
	for i, c := range codes {
		if c.String() != want[i] {
			t.Errorf("code %d = %q, want %q", i, c, want[i])
		}
	}
}
