package dnswire

import (
	"testing"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/wire"
)

func TestQuestionEncodeDecodeRoundTrip(t *testing.T) {
	q := Question{Name: label.MustNew("example.com"), Type: enum.TypeA, Class: enum.ClassIN}

	buf := wire.NewCompressionWriteBuffer()
	if err := q.encode(buf); err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	readBuf := wire.NewCompressionBuffer(buf.Bytes())
	got, err := decodeQuestion(readBuf)
	if err != nil {
		t.Fatalf("decodeQuestion() error: %v", err)
	}
	if !got.Name.Equal(q.Name) || got.Type != q.Type || got.Class != q.Class {
		t.Errorf("got %+v, want %+v", got, q)
	}
}
