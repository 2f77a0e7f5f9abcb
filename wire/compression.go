package wire

import (
	"fmt"

	"github.com/dnsscience/dnswire/label"
)

// maxCompressionDepth bounds pointer-chasing during decode. The
// strictly-backward-pointer rule already prevents infinite loops (every
// jump strictly decreases the offset a name can be read from again), but a
// depth cap gives decode an O(packet_size) bound even against a packet
// built purely of backward chains, matching spec.md §5's termination
// requirement.
const maxCompressionDepth = 128

// pointerTag is the top-two-bits pattern (0b11) marking a length byte as
// a compression pointer rather than a label length.
const pointerTag = 0xC0

// CompressionBuffer extends Buffer with DNS name encoding/decoding and a
// per-buffer suffix→offset cache used to emit compression pointers. The
// cache's lifetime is the Buffer's lifetime: construct one per
// encode/decode, discard it when done.
type CompressionBuffer struct {
	Buffer
	cache map[string]int
}

// NewCompressionBuffer wraps data for decoding.
func NewCompressionBuffer(data []byte) *CompressionBuffer {
	return &CompressionBuffer{Buffer: Buffer{data: data}, cache: make(map[string]int)}
}

// NewCompressionWriteBuffer returns an empty CompressionBuffer ready for
// encoding a single packet.
func NewCompressionWriteBuffer() *CompressionBuffer {
	return &CompressionBuffer{Buffer: Buffer{data: make([]byte, 0, 512)}, cache: make(map[string]int)}
}

// DecodeName reads one name at the current offset, following compression
// pointers as needed, and advances the offset past the encoded name (a
// pointer always counts as exactly 2 bytes in the originating stream,
// regardless of how much data its target resolves to).
func (c *CompressionBuffer) DecodeName() (label.Label, error) {
	var components [][]byte
	offset := c.offset
	origOffset := c.offset
	jumped := false
	depth := 0

	for {
		if offset >= len(c.data) {
			return label.Label{}, fmt.Errorf("%w: name length byte at %d out of range", ErrShortRead, offset)
		}
		lengthByte := c.data[offset]

		switch {
		case lengthByte&pointerTag == pointerTag:
			if offset+1 >= len(c.data) {
				return label.Label{}, fmt.Errorf("%w: truncated compression pointer at %d", ErrShortRead, offset)
			}
			ptr := int(lengthByte&0x3F)<<8 | int(c.data[offset+1])

			if ptr >= origOffset {
				return label.Label{}, fmt.Errorf("%w: pointer at %d targets %d, which is not strictly backward", ErrFormatError, offset, ptr)
			}
			depth++
			if depth > maxCompressionDepth {
				return label.Label{}, fmt.Errorf("%w: compression pointer chain exceeds %d jumps", ErrFormatError, maxCompressionDepth)
			}

			if !jumped {
				c.offset = offset + 2
				jumped = true
			}
			origOffset = ptr
			offset = ptr

		case lengthByte&0xC0 != 0:
			// Top two bits 0b01 or 0b10 are reserved.
			return label.Label{}, fmt.Errorf("%w: reserved label length tag 0x%02x at %d", ErrFormatError, lengthByte, offset)

		case lengthByte == 0:
			if !jumped {
				c.offset = offset + 1
			}
			l, err := label.FromComponents(components)
			if err != nil {
				return label.Label{}, err
			}
			return l, nil

		default:
			n := int(lengthByte)
			if n > label.MaxComponentLength {
				return label.Label{}, fmt.Errorf("%w: label component length %d exceeds %d", ErrFormatError, n, label.MaxComponentLength)
			}
			start := offset + 1
			if start+n > len(c.data) {
				return label.Label{}, fmt.Errorf("%w: label component at %d truncated", ErrShortRead, start)
			}
			component := make([]byte, n)
			copy(component, c.data[start:start+n])
			components = append(components, component)
			offset = start + n
		}
	}
}

// EncodeName writes name at the current write offset. When allowCache is
// true, previously emitted suffixes are reused as 2-byte back-pointers and
// newly emitted suffixes are recorded for later names to point at. RRSIG's
// signer name must be encoded with allowCache=false, since its signature
// is computed over the canonical uncompressed form.
func (c *CompressionBuffer) EncodeName(name label.Label, allowCache bool) error {
	if err := name.Validate(); err != nil {
		return err
	}
	if name.IsRoot() {
		c.Append([]byte{0})
		return nil
	}

	components := name.Components()
	for i := 0; i < len(components); i++ {
		suffix := name.Suffix(i)
		key := suffix.CacheKey()

		if allowCache {
			if ptr, ok := c.cache[key]; ok {
				return c.Pack("H", uint64(pointerTag)<<8|uint64(ptr))
			}
			// Pointer offsets fit in 14 bits (spec.md §4.2); beyond that,
			// fall back to leaving this suffix uncompressible rather than
			// recording an offset no pointer could reach.
			if c.offset <= 0x3FFF {
				c.cache[key] = c.offset
			}
		}

		if err := c.Pack("B", uint64(len(components[i]))); err != nil {
			return err
		}
		c.Append(components[i])
	}
	c.Append([]byte{0})
	return nil
}
