// Package rdata implements the per-record-type wire codecs for RDATA: the
// variable-length, type-specific payload that follows an RR's fixed
// NAME/TYPE/CLASS/TTL/RDLENGTH prefix.
package rdata

import (
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// RDATA is the sum type every record-data codec implements: one arm per
// supported record type (A, AAAA, CNAME, NS, PTR, MX, SOA, TXT, NAPTR,
// OPT, DNSKEY, RRSIG, DS) plus Opaque for anything else. Decode must
// consume exactly rdlength bytes; Encode appends the wire form at the
// buffer's current write offset (compression names included, where the
// type has any).
type RDATA interface {
	// Type returns this arm's numeric record type.
	Type() uint16

	// Decode reads rdlength bytes of RDATA from buf's current offset.
	Decode(buf *wire.CompressionBuffer, rdlength int) error

	// Encode writes this RDATA's wire form at buf's current write offset.
	Encode(buf *wire.CompressionBuffer) error
}

// constructor builds a zero-value RDATA arm for a given type, ready for
// Decode to fill in.
type constructor func() RDATA

// registry maps numeric record types to their codec constructor. Types
// absent from the registry decode as Opaque.
var registry = map[uint16]constructor{
	enum.TypeA:      func() RDATA { return new(A) },
	enum.TypeAAAA:   func() RDATA { return new(AAAA) },
	enum.TypeCNAME:  func() RDATA { return &Name{rtype: enum.TypeCNAME} },
	enum.TypeNS:     func() RDATA { return &Name{rtype: enum.TypeNS} },
	enum.TypePTR:    func() RDATA { return &Name{rtype: enum.TypePTR} },
	enum.TypeMX:     func() RDATA { return new(MX) },
	enum.TypeSOA:    func() RDATA { return new(SOA) },
	enum.TypeTXT:    func() RDATA { return new(TXT) },
	enum.TypeNAPTR:  func() RDATA { return new(NAPTR) },
	enum.TypeOPT:    func() RDATA { return new(OPT) },
	enum.TypeDNSKEY: func() RDATA { return new(DNSKEY) },
	enum.TypeRRSIG:  func() RDATA { return new(RRSIG) },
	enum.TypeDS:     func() RDATA { return new(DS) },
}

// Register adds or overrides the codec used for a given numeric record
// type. It lets callers outside this package extend dispatch without a
// registry of their own.
func Register(rtype uint16, ctor func() RDATA) {
	registry[rtype] = ctor
}

// New constructs the registered RDATA arm for rtype, or an *Opaque arm if
// none is registered.
func New(rtype uint16) RDATA {
	if ctor, ok := registry[rtype]; ok {
		return ctor()
	}
	return &Opaque{RRType: rtype}
}

// Opaque is the fallback arm for any record type without a dedicated
// codec: the raw RDATA bytes, preserved verbatim.
type Opaque struct {
	RRType uint16
	Data   []byte
}

func (o *Opaque) Type() uint16 { return o.RRType }

func (o *Opaque) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	data, err := buf.Get(rdlength)
	if err != nil {
		return err
	}
	o.Data = append([]byte(nil), data...)
	return nil
}

func (o *Opaque) Encode(buf *wire.CompressionBuffer) error {
	buf.Append(o.Data)
	return nil
}
