package failures_test

import (
	"errors"
	"strings"
	"testing"

	"gw2inventory/internal/failures"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("connection reset")
	err := failures.Wrap(failures.ErrNetwork, "gw2", "inventory", "request failed", base)
	if !errors.Is(err, failures.ErrNetwork) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"gw2", "inventory", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := failures.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failures.ErrIO) {
		t.Fatalf("expected ErrIO default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failed") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestHintMapping(t *testing.T) {
	cases := []struct {
		marker error
		want   string
	}{
		{failures.ErrConfiguration, "GW2_API_KEY"},
		{failures.ErrNetwork, "connectivity"},
		{failures.ErrDeserialization, "cache clear"},
		{failures.ErrIO, "permissions"},
		{failures.ErrNotFound, "cache refresh"},
	}
	for _, tc := range cases {
		hint := failures.Hint(failures.Wrap(tc.marker, "test", "", "", nil))
		if !strings.Contains(hint, tc.want) {
			t.Fatalf("hint for %v = %q, want fragment %q", tc.marker, hint, tc.want)
		}
	}
	if hint := failures.Hint(errors.New("plain")); hint != "" {
		t.Fatalf("expected empty hint for untagged error, got %q", hint)
	}
	if hint := failures.Hint(nil); hint != "" {
		t.Fatalf("expected empty hint for nil, got %q", hint)
	}
}
