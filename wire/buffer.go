// Package wire implements the read/write cursor over a DNS packet's raw
// bytes: big-endian packed integers, length-prefixed spans, and
// back-patchable writes. It has no notion of domain names or record
// types; see CompressionBuffer in compression.go for the name-aware layer
// built on top of it.
package wire

import (
	"fmt"
)

// Buffer is a single-cursor read/write view over a byte sequence. A
// freshly constructed Buffer over existing data reads from offset 0; an
// empty Buffer used for encoding starts at offset 0 and grows as Pack/
// Append calls write past the end.
type Buffer struct {
	data   []byte
	offset int
}

// NewBuffer wraps data for reading (or for writing+reading combined, as
// Update requires when back-patching bytes already written).
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewWriteBuffer returns an empty Buffer ready for encoding.
func NewWriteBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 512)}
}

// Bytes returns the buffer's current contents. The caller must not mutate
// the returned slice if the Buffer is still in use.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the total length of the underlying data.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Offset returns the current cursor position.
func (b *Buffer) Offset() int {
	return b.offset
}

// SetOffset moves the cursor without touching the data, used by
// CompressionBuffer to follow and restore positions around pointer jumps.
func (b *Buffer) SetOffset(off int) {
	b.offset = off
}

// Remaining returns the number of unread bytes after the current offset.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.offset
}

// Get returns the next n bytes and advances the offset by n.
func (b *Buffer) Get(n int) ([]byte, error) {
	if n < 0 || b.offset+n > len(b.data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortRead, n, b.Remaining())
	}
	out := b.data[b.offset : b.offset+n]
	b.offset += n
	return out, nil
}

// Append adds raw bytes at the end of data and advances the offset past
// them. It is only valid while offset == len(data), i.e. during encoding.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
	b.offset = len(b.data)
}

// packToken is one element of a parsed pack/unpack format string: a count
// (defaulting to 1) and a kind byte drawn from {'B','H','I'}.
type packToken struct {
	count int
	kind  byte
}

func parseFormat(format string) ([]packToken, int, error) {
	var tokens []packToken
	size := 0
	i := 0
	for i < len(format) {
		count := 0
		start := i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			count = count*10 + int(format[i]-'0')
			i++
		}
		if i == start {
			count = 1
		}
		if i >= len(format) {
			return nil, 0, fmt.Errorf("%w: dangling count in format %q", ErrFormatError, format)
		}
		kind := format[i]
		i++
		var width int
		switch kind {
		case 'B':
			width = 1
		case 'H':
			width = 2
		case 'I':
			width = 4
		default:
			return nil, 0, fmt.Errorf("%w: unknown format verb %q", ErrFormatError, kind)
		}
		tokens = append(tokens, packToken{count: count, kind: kind})
		size += width * count
	}
	return tokens, size, nil
}

// Unpack decodes big-endian integers per format (a sequence of optional
// counts followed by B=u8, H=u16, I=u32, e.g. "HHI" or "16B") and
// advances the offset. Every decoded value widens to uint64 regardless of
// source width; callers narrow as appropriate.
func (b *Buffer) Unpack(format string) ([]uint64, error) {
	tokens, size, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	raw, err := b.Get(size)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, 0, size)
	pos := 0
	for _, tok := range tokens {
		for j := 0; j < tok.count; j++ {
			switch tok.kind {
			case 'B':
				out = append(out, uint64(raw[pos]))
				pos++
			case 'H':
				out = append(out, uint64(raw[pos])<<8|uint64(raw[pos+1]))
				pos += 2
			case 'I':
				out = append(out, uint64(raw[pos])<<24|uint64(raw[pos+1])<<16|uint64(raw[pos+2])<<8|uint64(raw[pos+3]))
				pos += 4
			}
		}
	}
	return out, nil
}

// Pack big-endian encodes args per format and appends them at the current
// write position, advancing the offset.
func (b *Buffer) Pack(format string, args ...uint64) error {
	tokens, size, err := parseFormat(format)
	if err != nil {
		return err
	}
	if need := countArgs(tokens); need != len(args) {
		return fmt.Errorf("%w: format %q needs %d args, got %d", ErrFormatError, format, need, len(args))
	}
	buf := make([]byte, 0, size)
	ai := 0
	for _, tok := range tokens {
		for j := 0; j < tok.count; j++ {
			v := args[ai]
			ai++
			switch tok.kind {
			case 'B':
				buf = append(buf, byte(v))
			case 'H':
				buf = append(buf, byte(v>>8), byte(v))
			case 'I':
				buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
			}
		}
	}
	b.Append(buf)
	return nil
}

func countArgs(tokens []packToken) int {
	n := 0
	for _, t := range tokens {
		n += t.count
	}
	return n
}

// Update overwrites bytes in place at pos without moving the cursor. It is
// used for rdlength back-patching: the writer emits a placeholder, records
// the position, writes the variable-length payload, then Updates the
// placeholder with the real length.
func (b *Buffer) Update(pos int, format string, args ...uint64) error {
	tokens, size, err := parseFormat(format)
	if err != nil {
		return err
	}
	if need := countArgs(tokens); need != len(args) {
		return fmt.Errorf("%w: format %q needs %d args, got %d", ErrFormatError, format, need, len(args))
	}
	if pos < 0 || pos+size > len(b.data) {
		return fmt.Errorf("%w: update at %d..%d exceeds buffer length %d", ErrFormatError, pos, pos+size, len(b.data))
	}
	ai := 0
	off := pos
	for _, tok := range tokens {
		for j := 0; j < tok.count; j++ {
			v := args[ai]
			ai++
			switch tok.kind {
			case 'B':
				b.data[off] = byte(v)
				off++
			case 'H':
				b.data[off] = byte(v >> 8)
				b.data[off+1] = byte(v)
				off += 2
			case 'I':
				b.data[off] = byte(v >> 24)
				b.data[off+1] = byte(v >> 16)
				b.data[off+2] = byte(v >> 8)
				b.data[off+3] = byte(v)
				off += 4
			}
		}
	}
	return nil
}
