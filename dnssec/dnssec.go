// Package dnssec provides the small structural helpers DNSSEC record
// types need: the RFC 4034 Appendix B key-tag checksum, UTC timestamp
// formatting for RRSIG's inception/expiration fields, and the
// base64/hex chunking used when printing keys and signatures. None of
// this validates a signature — that is explicitly out of scope (spec.md
// non-goals).
package dnssec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"
)

// KeyTag computes the RFC 4034 Appendix B key-tag checksum over a
// DNSKEY's canonical RDATA bytes (flags, protocol, algorithm, key
// material — exactly what DNSKEY.RData returns).
func KeyTag(rdata []byte) uint16 {
	var ac uint32
	for i, b := range rdata {
		if i&1 == 0 {
			ac += uint32(b) << 8
		} else {
			ac += uint32(b)
		}
	}
	ac += (ac >> 16) & 0xFFFF
	return uint16(ac & 0xFFFF)
}

// FormatTimestamp renders t as YYYYMMDDHHMMSS in UTC, the form RRSIG's
// inception/expiration fields use when printed. The reference
// implementation this codec is grounded on formats in local time; spec.md
// §9 calls that out as a bug this codec does not repeat.
func FormatTimestamp(unix uint32) string {
	return time.Unix(int64(unix), 0).UTC().Format("20060102150405")
}

// chunk splits s into fixed-width groups.
func chunk(s string, width int) []string {
	var chunks []string
	for start := 0; start < len(s); start += width {
		end := start + width
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end])
	}
	return chunks
}

// Base64Chunks base64-encodes data and splits the result into
// space-separated groups of width characters. There is no default width;
// the caller always supplies it.
func Base64Chunks(data []byte, width int) string {
	return strings.Join(chunk(base64.StdEncoding.EncodeToString(data), width), " ")
}

// HexChunks hex-encodes data and splits the result into space-separated
// groups of width characters.
func HexChunks(data []byte, width int) string {
	return strings.Join(chunk(hex.EncodeToString(data), width), " ")
}
