package dnswire

import (
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

// Question is one entry of a message's question section: a name plus a
// 16-bit query type and a 16-bit query class.
type Question struct {
	Name  label.Label
	Type  uint16
	Class uint16
}

func decodeQuestion(buf *wire.CompressionBuffer) (Question, error) {
	name, err := buf.DecodeName()
	if err != nil {
		return Question{}, err
	}
	vals, err := buf.Unpack("HH")
	if err != nil {
		return Question{}, err
	}
	return Question{Name: name, Type: uint16(vals[0]), Class: uint16(vals[1])}, nil
}

func (q Question) encode(buf *wire.CompressionBuffer) error {
	if err := buf.EncodeName(q.Name, true); err != nil {
		return err
	}
	return buf.Pack("HH", uint64(q.Type), uint64(q.Class))
}
