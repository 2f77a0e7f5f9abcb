package dnswire

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/wire"
)

// ResourceRecord is a name + 16-bit type + 16-bit class + 32-bit TTL +
// type-specific RDATA. The OPT pseudo-record (type 41) overloads CLASS as
// the sender's UDP payload size and TTL's bit 15 as the DNSSEC-OK (DO)
// flag; OPT never gets its own Go type here, only accessor methods over
// these same fields, so every message section stays a plain
// []ResourceRecord.
type ResourceRecord struct {
	Name  label.Label
	Type  uint16
	Class uint16
	TTL   uint32
	RData rdata.RDATA
}

// IsOPT reports whether this record is the EDNS0 pseudo-record.
func (rr *ResourceRecord) IsOPT() bool { return rr.Type == enum.TypeOPT }

// UDPPayloadSize returns the OPT record's advertised UDP payload size
// (its CLASS field, repurposed per RFC 2671).
func (rr *ResourceRecord) UDPPayloadSize() uint16 { return rr.Class }

// SetUDPPayloadSize sets the OPT record's advertised UDP payload size.
func (rr *ResourceRecord) SetUDPPayloadSize(size uint16) { rr.Class = size }

// DOFlag reports the OPT record's DNSSEC-OK bit (bit 15 of TTL).
func (rr *ResourceRecord) DOFlag() bool { return rr.TTL&0x8000 != 0 }

// SetDOFlag sets or clears the OPT record's DNSSEC-OK bit.
func (rr *ResourceRecord) SetDOFlag(v bool) {
	if v {
		rr.TTL |= 0x8000
	} else {
		rr.TTL &^= 0x8000
	}
}

// ExtendedRcodeHigh returns the upper 8 bits of the 12-bit extended RCODE
// carried in an OPT record's TTL field (RFC 2671 §4.6).
func (rr *ResourceRecord) ExtendedRcodeHigh() uint8 { return uint8(rr.TTL >> 24) }

// SetExtendedRcodeHigh sets the upper 8 bits of the extended RCODE.
func (rr *ResourceRecord) SetExtendedRcodeHigh(v uint8) {
	rr.TTL = (rr.TTL &^ (0xFF << 24)) | uint32(v)<<24
}

func decodeRR(buf *wire.CompressionBuffer) (ResourceRecord, error) {
	name, err := buf.DecodeName()
	if err != nil {
		return ResourceRecord{}, err
	}
	fixed, err := buf.Unpack("HHIH")
	if err != nil {
		return ResourceRecord{}, err
	}
	rr := ResourceRecord{
		Name:  name,
		Type:  uint16(fixed[0]),
		Class: uint16(fixed[1]),
		TTL:   uint32(fixed[2]),
	}
	rdlength := int(fixed[3])

	if rdlength == 0 {
		rr.RData = &rdata.Opaque{RRType: rr.Type}
		return rr, nil
	}

	before := buf.Offset()
	rd := rdata.New(rr.Type)
	if err := rd.Decode(buf, rdlength); err != nil {
		return ResourceRecord{}, fmt.Errorf("decode %s rdata: %w", enum.QTYPE.Name(int(rr.Type)), err)
	}
	consumed := buf.Offset() - before
	if consumed != rdlength {
		return ResourceRecord{}, fmt.Errorf("%w: %s codec consumed %d bytes, rdlength declared %d",
			wire.ErrFormatError, enum.QTYPE.Name(int(rr.Type)), consumed, rdlength)
	}
	rr.RData = rd
	return rr, nil
}

func (rr ResourceRecord) encode(buf *wire.CompressionBuffer) error {
	if err := buf.EncodeName(rr.Name, true); err != nil {
		return err
	}
	if err := buf.Pack("HHI", uint64(rr.Type), uint64(rr.Class), uint64(rr.TTL)); err != nil {
		return err
	}
	rdlengthPos := buf.Offset()
	if err := buf.Pack("H", 0); err != nil {
		return err
	}
	start := buf.Offset()
	if rr.RData != nil {
		if err := rr.RData.Encode(buf); err != nil {
			return err
		}
	}
	end := buf.Offset()
	return buf.Update(rdlengthPos, "H", uint64(end-start))
}
