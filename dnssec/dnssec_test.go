package dnssec

import (
	"testing"
	"time"
)

func TestKeyTagKnownVector(t *testing.T) {
	// Fixed DNSKEY RDATA: flags=256, protocol=3, algorithm=5, followed by
	// 90 bytes of key material.
	rdata := []byte{
		0x01, 0x00, 0x03, 0x05,
		0xd2, 0x6a, 0x6c, 0xa6, 0x9c, 0xf7, 0x5b, 0x61, 0x2c, 0x40, 0xaf, 0x1c, 0x5e, 0x4c, 0x50, 0x6d,
		0x83, 0x78, 0x84, 0x37, 0x09, 0xb9, 0x7e, 0x04, 0x16, 0x47, 0xe1, 0xbf, 0xf4, 0x3d, 0x8d, 0x64,
		0xc6, 0x49, 0xaf, 0x1e, 0x37, 0x19, 0x73, 0xc9, 0xe8, 0x91, 0xfc, 0xe3, 0xdf, 0x56, 0x6a, 0x32,
		0x10, 0x29, 0x8f, 0xb9, 0x0a, 0x9b, 0x4b, 0xaf, 0x76, 0xee, 0x5c, 0x0d, 0x74, 0x85, 0x6a, 0x93,
		0x90, 0x5e, 0xe3, 0xd5, 0x14, 0x29, 0xdb, 0xe9, 0x60, 0xc6, 0xaf, 0x30, 0xf3, 0x3c, 0x4f, 0x32,
		0xe4, 0xd8, 0x97, 0x2a, 0xd9, 0x4b, 0xd0, 0x21, 0x20, 0x40,
	}
	if got, want := KeyTag(rdata), uint16(9034); got != want {
		t.Errorf("KeyTag() = %d, want %d", got, want)
	}
}

func TestKeyTagEmpty(t *testing.T) {
	if got := KeyTag(nil); got != 0 {
		t.Errorf("KeyTag(nil) = %d, want 0", got)
	}
}

func TestFormatTimestampUTC(t *testing.T) {
	// 2024-01-02T03:04:05Z
	ts := uint32(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Unix())
	if got, want := FormatTimestamp(ts), "20240102030405"; got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}

func TestFormatTimestampIgnoresLocalZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, loc)
	if got, want := FormatTimestamp(uint32(local.Unix())), local.UTC().Format("20060102150405"); got != want {
		t.Errorf("FormatTimestamp() = %q, want %q (must render in UTC regardless of local zone)", got, want)
	}
}

func TestBase64ChunksWidth(t *testing.T) {
	got := Base64Chunks([]byte("hello world"), 4)
	want := "aGVs bG8g d29y bGQ="
	if got != want {
		t.Errorf("Base64Chunks() = %q, want %q", got, want)
	}
}

func TestHexChunksWidth(t *testing.T) {
	got := HexChunks([]byte{0xde, 0xad, 0xbe, 0xef}, 4)
	want := "dead beef"
	if got != want {
		t.Errorf("HexChunks() = %q, want %q", got, want)
	}
}
