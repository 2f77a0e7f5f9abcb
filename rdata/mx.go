package rdata

import (
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// MX is a mail-exchange record: a 16-bit preference plus a compressible
// exchange name.
type MX struct {
	Preference uint16
	Exchange   label.Label
}

func (r *MX) Type() uint16 { return enum.TypeMX }

func (r *MX) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("H")
	if err != nil {
		return err
	}
	r.Preference = uint16(vals[0])
	name, err := buf.DecodeName()
	if err != nil {
		return err
	}
	r.Exchange = name
	return nil
}

func (r *MX) Encode(buf *wire.CompressionBuffer) error {
	if err := buf.Pack("H", uint64(r.Preference)); err != nil {
		return err
	}
	return buf.EncodeName(r.Exchange, true)
}
