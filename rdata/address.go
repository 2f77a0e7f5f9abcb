package rdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// A is a 4-byte IPv4 address record.
type A struct {
	Addr [4]byte
}

func (r *A) Type() uint16 { return enum.TypeA }

func (r *A) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("4B")
	if err != nil {
		return err
	}
	for i := range r.Addr {
		r.Addr[i] = byte(vals[i])
	}
	return nil
}

func (r *A) Encode(buf *wire.CompressionBuffer) error {
	return buf.Pack("4B", uint64(r.Addr[0]), uint64(r.Addr[1]), uint64(r.Addr[2]), uint64(r.Addr[3]))
}

// String renders dotted-quad form.
func (r *A) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", r.Addr[0], r.Addr[1], r.Addr[2], r.Addr[3])
}

// ParseA builds an A record from a dotted-quad string.
func ParseA(s string) (*A, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return nil, fmt.Errorf("rdata: %q is not a dotted-quad IPv4 address", s)
	}
	var a A
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("rdata: %q is not a dotted-quad IPv4 address", s)
		}
		a.Addr[i] = byte(n)
	}
	return &a, nil
}

// AAAA is a 16-byte IPv6 address record. The internal representation is
// the 16 raw bytes (spec.md §9 flags the reference implementation's lack
// of a canonical internal form as an open question); textual formatting
// is provided on demand via String.
type AAAA struct {
	Addr [16]byte
}

func (r *AAAA) Type() uint16 { return enum.TypeAAAA }

func (r *AAAA) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("16B")
	if err != nil {
		return err
	}
	for i := range r.Addr {
		r.Addr[i] = byte(vals[i])
	}
	return nil
}

func (r *AAAA) Encode(buf *wire.CompressionBuffer) error {
	args := make([]uint64, 16)
	for i, b := range r.Addr {
		args[i] = uint64(b)
	}
	return buf.Pack("16B", args...)
}

// String renders colon-separated hex groups, e.g. "2001:0db8:...".
func (r *AAAA) String() string {
	var b strings.Builder
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02x%02x", r.Addr[i], r.Addr[i+1])
	}
	return b.String()
}
