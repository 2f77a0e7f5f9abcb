package rdata

import (
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// SOA is the start-of-authority record: two compressible names (the
// primary master and the responsible-party mailbox) plus five 32-bit
// timing fields.
type SOA struct {
	MName   label.Label
	RName   label.Label
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r *SOA) Type() uint16 { return enum.TypeSOA }

func (r *SOA) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	mname, err := buf.DecodeName()
	if err != nil {
		return err
	}
	rname, err := buf.DecodeName()
	if err != nil {
		return err
	}
	vals, err := buf.Unpack("IIIII")
	if err != nil {
		return err
	}
	r.MName = mname
	r.RName = rname
	r.Serial = uint32(vals[0])
	r.Refresh = uint32(vals[1])
	r.Retry = uint32(vals[2])
	r.Expire = uint32(vals[3])
	r.Minimum = uint32(vals[4])
	return nil
}

func (r *SOA) Encode(buf *wire.CompressionBuffer) error {
	if err := buf.EncodeName(r.MName, true); err != nil {
		return err
	}
	if err := buf.EncodeName(r.RName, true); err != nil {
		return err
	}
	return buf.Pack("IIIII", uint64(r.Serial), uint64(r.Refresh), uint64(r.Retry), uint64(r.Expire), uint64(r.Minimum))
}
