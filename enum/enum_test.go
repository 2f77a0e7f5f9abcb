package enum

import "testing"

func TestBimapRoundTrip(t *testing.T) {
	if got, want := QTYPE.Name(TypeA), "A"; got != want {
		t.Errorf("Name(TypeA) = %q, want %q", got, want)
	}
	code, ok := QTYPE.Code("AAAA")
	if !ok || code != TypeAAAA {
		t.Errorf("Code(AAAA) = (%d, %v), want (%d, true)", code, ok, TypeAAAA)
	}
}

func TestBimapUnknownCodeReturnsSentinel(t *testing.T) {
	if got := QTYPE.Name(65280); got != "" {
		t.Errorf("Name(65280) = %q, want empty sentinel", got)
	}
	if got := RCODE.Name(4000); got != "None" {
		t.Errorf("Name(4000) = %q, want %q", got, "None")
	}
}

func TestBimapUnknownNameNotFound(t *testing.T) {
	if _, ok := QTYPE.Code("BOGUS"); ok {
		t.Error("Code(BOGUS) ok = true, want false")
	}
}

func TestQRMnemonics(t *testing.T) {
	if got := QR.Name(0); got != "QUERY" {
		t.Errorf("QR.Name(0) = %q, want QUERY", got)
	}
	if got := QR.Name(1); got != "RESPONSE" {
		t.Errorf("QR.Name(1) = %q, want RESPONSE", got)
	}
}
