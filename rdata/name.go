package rdata

import (
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// Name is the RDATA for the three record types whose payload is nothing
// but a single compressible domain name: CNAME, NS and PTR. The original
// implementation this codec is grounded on models PTR and NS as subclasses
// of CNAME for exactly this reason; here a single struct tagged with its
// record type plays the same role without needing a type hierarchy.
type Name struct {
	rtype  uint16
	Target label.Label
}

// NewName builds a Name RDATA arm for rtype (one of TypeCNAME, TypeNS,
// TypePTR) with the given target.
func NewName(rtype uint16, target label.Label) *Name {
	return &Name{rtype: rtype, Target: target}
}

func (r *Name) Type() uint16 { return r.rtype }

func (r *Name) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	name, err := buf.DecodeName()
	if err != nil {
		return err
	}
	r.Target = name
	return nil
}

func (r *Name) Encode(buf *wire.CompressionBuffer) error {
	return buf.EncodeName(r.Target, true)
}
