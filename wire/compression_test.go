package wire

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dnsscience/dnswire/label"
)

func TestEncodeNameRoot(t *testing.T) {
	buf := NewCompressionWriteBuffer()
	if err := buf.EncodeName(label.Root(), true); err != nil {
		t.Fatalf("EncodeName() error: %v", err)
	}
	if got, want := buf.Bytes(), []byte{0}; string(got) != string(want) {
		t.Errorf("EncodeName(root) = %v, want %v", got, want)
	}
}

func TestEncodeNameLiteral(t *testing.T) {
	buf := NewCompressionWriteBuffer()
	name := label.MustNew("aaa.bbb.ccc")
	if err := buf.EncodeName(name, true); err != nil {
		t.Fatalf("EncodeName() error: %v", err)
	}
	want, _ := hex.DecodeString("036161610362626203636363" + "00")
	if got := buf.Bytes(); string(got) != string(want) {
		t.Errorf("EncodeName(aaa.bbb.ccc) = %x, want %x", got, want)
	}
}

// TestCompressionFourNames exercises the packet-wide compression cache
// across four related names, packed back to back as a single cache
// would see them during message encoding: the third and fourth names
// each reuse a previously written suffix via a backward pointer.
func TestCompressionFourNames(t *testing.T) {
	names := []label.Label{
		label.MustNew("aaa.bbb.ccc"),
		label.MustNew("xxx.yyy.zzz"),
		label.MustNew("zzz.xxx.bbb.ccc"),
		label.MustNew("aaa.xxx.bbb.ccc"),
	}

	buf := NewCompressionWriteBuffer()
	var offsets []int
	for _, n := range names {
		offsets = append(offsets, buf.Offset())
		if err := buf.EncodeName(n, true); err != nil {
			t.Fatalf("EncodeName(%s) error: %v", n, err)
		}
	}

	// The third and fourth names each contain a reusable suffix already
	// seen earlier in the stream, so their encoded form must be shorter
	// than writing every component out literally would require.
	literal3 := label.MustNew("zzz.xxx.bbb.ccc").EncodedLen()
	encoded3 := offsets[3] - offsets[2]
	if encoded3 >= literal3 {
		t.Errorf("name 3 encoded length = %d, want < %d (literal, no compression)", encoded3, literal3)
	}

	literal4 := label.MustNew("aaa.xxx.bbb.ccc").EncodedLen()
	encoded4 := buf.Offset() - offsets[3]
	if encoded4 >= literal4 {
		t.Errorf("name 4 encoded length = %d, want < %d (literal, no compression)", encoded4, literal4)
	}

	decodeBuf := NewCompressionBuffer(buf.Bytes())
	for i, want := range names {
		decodeBuf.SetOffset(offsets[i])
		got, err := decodeBuf.DecodeName()
		if err != nil {
			t.Fatalf("DecodeName() #%d error: %v", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("DecodeName() #%d = %q, want %q", i, got, want)
		}
	}
}

func TestDecodeNameRejectsForwardPointer(t *testing.T) {
	// A pointer at offset 0 targeting offset 2 (itself forward) must be
	// rejected: compression pointers may only point strictly backward.
	data := []byte{0xC0, 0x02, 0x00}
	buf := NewCompressionBuffer(data)
	_, err := buf.DecodeName()
	if !errors.Is(err, ErrFormatError) {
		t.Errorf("DecodeName() error = %v, want ErrFormatError", err)
	}
}

func TestDecodeNameRejectsSelfPointer(t *testing.T) {
	data := []byte{0xC0, 0x00}
	buf := NewCompressionBuffer(data)
	_, err := buf.DecodeName()
	if !errors.Is(err, ErrFormatError) {
		t.Errorf("DecodeName() error = %v, want ErrFormatError", err)
	}
}

func TestDecodeNameRejectsReservedTag(t *testing.T) {
	data := []byte{0x40, 0x00} // top bits 0b01
	buf := NewCompressionBuffer(data)
	_, err := buf.DecodeName()
	if !errors.Is(err, ErrFormatError) {
		t.Errorf("DecodeName() error = %v, want ErrFormatError", err)
	}
}

func TestDecodeNamePointerChainCap(t *testing.T) {
	// Build a chain of maxCompressionDepth+1 backward pointers, each
	// pointing at the pointer before it (two bytes back), terminating at a
	// root label.
	data := make([]byte, 0, 2*(maxCompressionDepth+2)+1)
	data = append(data, 0x00) // offset 0: root terminator
	for i := 0; i < maxCompressionDepth+1; i++ {
		target := len(data) - 2
		if target < 0 {
			target = 0
		}
		data = append(data, 0xC0|byte(target>>8), byte(target))
	}
	buf := NewCompressionBuffer(data)
	buf.SetOffset(len(data) - 2)
	_, err := buf.DecodeName()
	if !errors.Is(err, ErrFormatError) {
		t.Errorf("DecodeName() error = %v, want ErrFormatError (chain too deep)", err)
	}
}

func TestEncodeNameRRSIGUncompressed(t *testing.T) {
	buf := NewCompressionWriteBuffer()
	first := label.MustNew("www.example.com")
	if err := buf.EncodeName(first, true); err != nil {
		t.Fatalf("EncodeName() error: %v", err)
	}
	before := buf.Offset()

	// Encoding the same name again with allowCache=false must write it
	// out literally rather than emitting a pointer, matching RRSIG's
	// signer-name requirement.
	second := label.MustNew("www.example.com")
	if err := buf.EncodeName(second, false); err != nil {
		t.Fatalf("EncodeName() error: %v", err)
	}
	if got, want := buf.Offset()-before, second.EncodedLen(); got != want {
		t.Errorf("uncompressed re-encode length = %d, want %d (no pointer emitted)", got, want)
	}
}
