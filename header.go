// Package dnswire implements a DNS wire-format codec: decoding raw DNS
// packets into a structured Message tree, and encoding such trees back
// into bit-exact wire bytes compatible with RFC 1035, RFC 2136 (UPDATE),
// RFC 2671 (EDNS0) and RFC 4034 (DNSSEC, structural parsing only).
//
// The package never opens a socket, never resolves a name, and never
// validates a DNSSEC signature — those are callers' concerns.
package dnswire

import (
	"github.com/dnsscience/dnswire/internal/bitfield"
	"github.com/dnsscience/dnswire/wire"
)

const headerSize = 12

// Header is the DNS message's fixed 12-byte header: a transaction ID, a
// 16-bit flag bitmap, and four section counts. The flag accessors below
// are computed over the bitmap so the on-wire representation stays the
// single source of truth (spec.md §4.4) rather than duplicating state in
// separate Go fields that could drift from it.
type Header struct {
	ID      uint16
	bitmap  uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// Bit positions and widths within the flag bitmap (MSB = bit 15).
const (
	bitQR     = 15
	bitOpcode = 11
	widOpcode = 4
	bitAA     = 10
	bitTC     = 9
	bitRD     = 8
	bitRA     = 7
	bitZ      = 4
	widZ      = 3
	bitRcode  = 0
	widRcode  = 4
)

// QR reports whether this is a response (true) or a query (false).
func (h *Header) QR() bool { return bitfield.Get(h.bitmap, bitQR, 1) != 0 }

// SetQR sets the query/response bit.
func (h *Header) SetQR(v bool) { h.bitmap = bitfield.Set(h.bitmap, boolBit(v), bitQR, 1) }

// Opcode returns the 4-bit operation code (enum.OpcodeQuery, ...Update, ...).
func (h *Header) Opcode() uint8 { return uint8(bitfield.Get(h.bitmap, bitOpcode, widOpcode)) }

// SetOpcode sets the 4-bit operation code.
func (h *Header) SetOpcode(v uint8) {
	h.bitmap = bitfield.Set(h.bitmap, uint16(v), bitOpcode, widOpcode)
}

// AA reports the Authoritative Answer bit.
func (h *Header) AA() bool { return bitfield.Get(h.bitmap, bitAA, 1) != 0 }

// SetAA sets the Authoritative Answer bit.
func (h *Header) SetAA(v bool) { h.bitmap = bitfield.Set(h.bitmap, boolBit(v), bitAA, 1) }

// TC reports the Truncated bit.
func (h *Header) TC() bool { return bitfield.Get(h.bitmap, bitTC, 1) != 0 }

// SetTC sets the Truncated bit.
func (h *Header) SetTC(v bool) { h.bitmap = bitfield.Set(h.bitmap, boolBit(v), bitTC, 1) }

// RD reports the Recursion Desired bit.
func (h *Header) RD() bool { return bitfield.Get(h.bitmap, bitRD, 1) != 0 }

// SetRD sets the Recursion Desired bit.
func (h *Header) SetRD(v bool) { h.bitmap = bitfield.Set(h.bitmap, boolBit(v), bitRD, 1) }

// RA reports the Recursion Available bit.
func (h *Header) RA() bool { return bitfield.Get(h.bitmap, bitRA, 1) != 0 }

// SetRA sets the Recursion Available bit.
func (h *Header) SetRA(v bool) { h.bitmap = bitfield.Set(h.bitmap, boolBit(v), bitRA, 1) }

// Z returns the reserved 3-bit field. It must be zero when sending but is
// preserved verbatim when parsing (spec.md §4.4).
func (h *Header) Z() uint8 { return uint8(bitfield.Get(h.bitmap, bitZ, widZ)) }

// Rcode returns the 4-bit response code.
func (h *Header) Rcode() uint8 { return uint8(bitfield.Get(h.bitmap, bitRcode, widRcode)) }

// SetRcode sets the 4-bit response code.
func (h *Header) SetRcode(v uint8) {
	h.bitmap = bitfield.Set(h.bitmap, uint16(v), bitRcode, widRcode)
}

// Bitmap returns the raw 16-bit flag word, e.g. for logging.
func (h *Header) Bitmap() uint16 { return h.bitmap }

// SetBitmap replaces the raw 16-bit flag word wholesale.
func (h *Header) SetBitmap(v uint16) { h.bitmap = v }

// UPDATE opcode (RFC 2136) names the same four section counts
// zones/prerequisites/updates/additional; the wire layout is identical to
// question/answer/authority/additional, so these are display aliases
// over the same fields rather than separate storage.
func (h *Header) ZOCount() uint16 { return h.QDCount }
func (h *Header) PRCount() uint16 { return h.ANCount }
func (h *Header) UPCount() uint16 { return h.NSCount }
func (h *Header) ADCount() uint16 { return h.ARCount }

func boolBit(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}

func decodeHeader(buf *wire.Buffer) (Header, error) {
	vals, err := buf.Unpack("HHHHHH")
	if err != nil {
		return Header{}, err
	}
	return Header{
		ID:      uint16(vals[0]),
		bitmap:  uint16(vals[1]),
		QDCount: uint16(vals[2]),
		ANCount: uint16(vals[3]),
		NSCount: uint16(vals[4]),
		ARCount: uint16(vals[5]),
	}, nil
}

func (h Header) encode(buf *wire.Buffer) error {
	return buf.Pack("HHHHHH",
		uint64(h.ID), uint64(h.bitmap),
		uint64(h.QDCount), uint64(h.ANCount), uint64(h.NSCount), uint64(h.ARCount),
	)
}
