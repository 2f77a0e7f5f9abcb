package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// OPTOption is one {code, data} pair inside an OPT pseudo-record's RDATA.
// The generic container is enough to round-trip any EDNS0 option; package
// edns layers the COOKIE option's own semantics on top of this.
type OPTOption struct {
	Code uint16
	Data []byte
}

// OPT is the RDATA of the EDNS0 pseudo-record (type 41): a sequence of
// options, each a 16-bit code, 16-bit length, and that many bytes. The
// surrounding RR's CLASS/TTL overload (UDP payload size, extended RCODE,
// DO flag) lives on the ResourceRecord in package message, not here — OPT
// never unifies with the ordinary RR layout in this codec's type system.
type OPT struct {
	Options []OPTOption
}

func (r *OPT) Type() uint16 { return enum.TypeOPT }

func (r *OPT) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	remaining := rdlength
	r.Options = nil
	for remaining >= 4 {
		vals, err := buf.Unpack("HH")
		if err != nil {
			return err
		}
		code, length := uint16(vals[0]), int(vals[1])
		remaining -= 4
		if length > remaining {
			return fmt.Errorf("%w: OPT option length %d exceeds remaining rdlength %d", wire.ErrFormatError, length, remaining)
		}
		data, err := buf.Get(length)
		if err != nil {
			return err
		}
		r.Options = append(r.Options, OPTOption{Code: code, Data: append([]byte(nil), data...)})
		remaining -= length
	}
	if remaining != 0 {
		return fmt.Errorf("%w: %d trailing bytes in OPT rdata", wire.ErrFormatError, remaining)
	}
	return nil
}

func (r *OPT) Encode(buf *wire.CompressionBuffer) error {
	for _, opt := range r.Options {
		if err := buf.Pack("HH", uint64(opt.Code), uint64(len(opt.Data))); err != nil {
			return err
		}
		buf.Append(opt.Data)
	}
	return nil
}
