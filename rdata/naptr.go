package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// NAPTR is a Naming Authority Pointer record (RFC 3403): order and
// preference, three length-prefixed byte strings, and a compressible
// replacement name.
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Service     []byte
	Regexp      []byte
	Replacement label.Label
}

func (r *NAPTR) Type() uint16 { return enum.TypeNAPTR }

func (r *NAPTR) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("HH")
	if err != nil {
		return err
	}
	r.Order = uint16(vals[0])
	r.Preference = uint16(vals[1])

	for _, dst := range []*[]byte{&r.Flags, &r.Service, &r.Regexp} {
		lvals, err := buf.Unpack("B")
		if err != nil {
			return err
		}
		s, err := buf.Get(int(lvals[0]))
		if err != nil {
			return err
		}
		*dst = append([]byte(nil), s...)
	}

	name, err := buf.DecodeName()
	if err != nil {
		return err
	}
	r.Replacement = name
	return nil
}

func (r *NAPTR) Encode(buf *wire.CompressionBuffer) error {
	if err := buf.Pack("HH", uint64(r.Order), uint64(r.Preference)); err != nil {
		return err
	}
	for _, s := range [][]byte{r.Flags, r.Service, r.Regexp} {
		if len(s) > 255 {
			return fmt.Errorf("%w: NAPTR field of %d bytes exceeds 255", wire.ErrFormatError, len(s))
		}
		if err := buf.Pack("B", uint64(len(s))); err != nil {
			return err
		}
		buf.Append(s)
	}
	return buf.EncodeName(r.Replacement, true)
}
