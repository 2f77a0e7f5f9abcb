package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// TXT holds one or more length-prefixed character-strings. RFC 1035 allows
// multiple <character-string>s within a single TXT RDATA; spec.md §9
// flags the reference implementation's single-string shortcut as a known
// limitation this codec does not repeat. First is a convenience accessor
// for callers that only ever produced the legacy single-string form.
type TXT struct {
	Strings [][]byte
}

func (r *TXT) Type() uint16 { return enum.TypeTXT }

// First returns the first character-string, or nil if there are none.
func (r *TXT) First() []byte {
	if len(r.Strings) == 0 {
		return nil
	}
	return r.Strings[0]
}

func (r *TXT) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	remaining := rdlength
	r.Strings = nil
	for remaining > 0 {
		lengths, err := buf.Unpack("B")
		if err != nil {
			return err
		}
		n := int(lengths[0])
		remaining--
		if n > remaining {
			return fmt.Errorf("%w: TXT character-string length %d exceeds remaining rdlength %d", wire.ErrFormatError, n, remaining)
		}
		s, err := buf.Get(n)
		if err != nil {
			return err
		}
		r.Strings = append(r.Strings, append([]byte(nil), s...))
		remaining -= n
	}
	return nil
}

func (r *TXT) Encode(buf *wire.CompressionBuffer) error {
	if len(r.Strings) == 0 {
		return buf.Pack("B", 0)
	}
	for _, s := range r.Strings {
		if len(s) > 255 {
			return fmt.Errorf("%w: TXT character-string of %d bytes exceeds 255", wire.ErrFormatError, len(s))
		}
		if err := buf.Pack("B", uint64(len(s))); err != nil {
			return err
		}
		buf.Append(s)
	}
	return nil
}
