package rdata

import (
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// RRSIG carries a DNSSEC signature over an RRset (RFC 4034 §3). The
// signer's name is never compressed on encode: its bytes feed the
// signature computation, so the wire form must be the canonical
// uncompressed name. Decode reads it with DecodeName, which follows a
// compression pointer if one is present. This codec only round-trips the bytes (spec.md's
// non-goals exclude actual signature verification).
type RRSIG struct {
	TypeCovered uint16
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  label.Label
	Signature   []byte
}

func (r *RRSIG) Type() uint16 { return enum.TypeRRSIG }

func (r *RRSIG) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	start := buf.Offset()

	vals, err := buf.Unpack("HBBIIIH")
	if err != nil {
		return err
	}
	r.TypeCovered = uint16(vals[0])
	r.Algorithm = uint8(vals[1])
	r.Labels = uint8(vals[2])
	r.OriginalTTL = uint32(vals[3])
	r.Expiration = uint32(vals[4])
	r.Inception = uint32(vals[5])
	r.KeyTag = uint16(vals[6])

	name, err := buf.DecodeName()
	if err != nil {
		return err
	}
	r.SignerName = name

	consumed := buf.Offset() - start
	sig, err := buf.Get(rdlength - consumed)
	if err != nil {
		return err
	}
	r.Signature = append([]byte(nil), sig...)
	return nil
}

func (r *RRSIG) Encode(buf *wire.CompressionBuffer) error {
	if err := buf.Pack("HBBIIIH",
		uint64(r.TypeCovered), uint64(r.Algorithm), uint64(r.Labels),
		uint64(r.OriginalTTL), uint64(r.Expiration), uint64(r.Inception), uint64(r.KeyTag),
	); err != nil {
		return err
	}
	if err := buf.EncodeName(r.SignerName, false); err != nil {
		return err
	}
	buf.Append(r.Signature)
	return nil
}
