package rdata

import (
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// DNSKEY carries a DNSSEC public key (RFC 4034 §2): flags (only the Zone
// Key bit 8 and Secure Entry Point bit 0 are defined), a protocol octet
// (always 3) and algorithm octet, and the opaque key material.
type DNSKEY struct {
	ZoneKey          bool
	SecureEntryPoint bool
	Protocol         uint8
	Algorithm        uint8
	PublicKey        []byte
}

func (r *DNSKEY) Type() uint16 { return enum.TypeDNSKEY }

func (r *DNSKEY) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("HBB")
	if err != nil {
		return err
	}
	// Only Zone Key (bit 8) and Secure Entry Point (bit 0) are modeled;
	// other bits (e.g. the RFC 5011 REVOKE bit, 0x0080) are dropped here
	// and encode back as zero, so such keys don't round-trip bit-exactly.
	flags := vals[0]
	r.ZoneKey = flags&0x0100 != 0
	r.SecureEntryPoint = flags&0x0001 != 0
	r.Protocol = uint8(vals[1])
	r.Algorithm = uint8(vals[2])

	key, err := buf.Get(rdlength - 4)
	if err != nil {
		return err
	}
	r.PublicKey = append([]byte(nil), key...)
	return nil
}

func (r *DNSKEY) Encode(buf *wire.CompressionBuffer) error {
	var flags uint64
	if r.ZoneKey {
		flags |= 0x0100
	}
	if r.SecureEntryPoint {
		flags |= 0x0001
	}
	if err := buf.Pack("HBB", flags, uint64(r.Protocol), uint64(r.Algorithm)); err != nil {
		return err
	}
	buf.Append(r.PublicKey)
	return nil
}

// RData returns the canonical RDATA bytes of this key (flags, protocol,
// algorithm, key material) as used by the RFC 4034 Appendix B key-tag
// algorithm. It never touches the compression cache since DNSKEY carries
// no name.
func (r *DNSKEY) RData() []byte {
	buf := wire.NewCompressionWriteBuffer()
	_ = r.Encode(buf)
	return buf.Bytes()
}
