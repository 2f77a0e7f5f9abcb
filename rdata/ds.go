package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// digestLengths maps a DS digest-type octet to its fixed digest length
// (RFC 4034 §5.1.4, RFC 4509 §2.2): 1 = SHA-1 (20 bytes), 2 = SHA-256 (32
// bytes).
var digestLengths = map[uint8]int{
	1: 20,
	2: 32,
}

// DS is a Delegation Signer record: a key tag, algorithm, digest type, and
// the digest itself, whose length is fixed by the digest type.
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (r *DS) Type() uint16 { return enum.TypeDS }

func (r *DS) Decode(buf *wire.CompressionBuffer, rdlength int) error {
	vals, err := buf.Unpack("HBB")
	if err != nil {
		return err
	}
	r.KeyTag = uint16(vals[0])
	r.Algorithm = uint8(vals[1])
	r.DigestType = uint8(vals[2])

	n, ok := digestLengths[r.DigestType]
	if !ok {
		return fmt.Errorf("%w: unknown DS digest type %d", wire.ErrFormatError, r.DigestType)
	}
	digest, err := buf.Get(n)
	if err != nil {
		return err
	}
	r.Digest = append([]byte(nil), digest...)
	return nil
}

func (r *DS) Encode(buf *wire.CompressionBuffer) error {
	if err := buf.Pack("HBB", uint64(r.KeyTag), uint64(r.Algorithm), uint64(r.DigestType)); err != nil {
		return err
	}
	buf.Append(r.Digest)
	return nil
}
