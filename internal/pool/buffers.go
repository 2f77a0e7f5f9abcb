// Package pool reduces allocation pressure on hot decode/encode paths:
// pools of raw byte buffers sized for UDP DNS traffic, plus a pool of
// dnswire.Message values for callers that parse and discard at high
// rates (proxies, fuzzers, load generators).
package pool

import (
	"sync"

	"github.com/dnsscience/dnswire"
)

const (
	// SmallBufferSize fits the overwhelming majority of UDP DNS queries.
	SmallBufferSize = 512
	// MediumBufferSize fits typical EDNS0 responses.
	MediumBufferSize = 4096
	// LargeBufferSize is the maximum DNS message size (TCP, 64KB EDNS0).
	LargeBufferSize = 65535
)

var smallBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, SmallBufferSize)
		return &buf
	},
}

var mediumBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, MediumBufferSize)
		return &buf
	},
}

var largeBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, LargeBufferSize)
		return &buf
	},
}

// GetBuffer returns a full-length buffer drawn from the smallest pool that
// holds size bytes; its length and capacity are that pool's buffer size. A
// size above LargeBufferSize still gets a LargeBufferSize buffer.
func GetBuffer(size int) []byte {
	switch {
	case size <= SmallBufferSize:
		bufPtr := smallBufferPool.Get().(*[]byte)
		return (*bufPtr)[:SmallBufferSize]
	case size <= MediumBufferSize:
		bufPtr := mediumBufferPool.Get().(*[]byte)
		return (*bufPtr)[:MediumBufferSize]
	default:
		bufPtr := largeBufferPool.Get().(*[]byte)
		return (*bufPtr)[:LargeBufferSize]
	}
}

// PutBuffer returns a buffer obtained from GetBuffer to its pool. Buffers
// of an unrecognized capacity are dropped rather than pooled.
func PutBuffer(buf []byte) {
	buf = buf[:cap(buf)]
	switch cap(buf) {
	case SmallBufferSize:
		smallBufferPool.Put(&buf)
	case MediumBufferSize:
		mediumBufferPool.Put(&buf)
	case LargeBufferSize:
		largeBufferPool.Put(&buf)
	}
}

var messagePool = sync.Pool{
	New: func() interface{} {
		return new(dnswire.Message)
	},
}

// GetMessage returns a zeroed Message from the pool.
func GetMessage() *dnswire.Message {
	return messagePool.Get().(*dnswire.Message)
}

// PutMessage clears msg's section slices and header, then returns it to
// the pool. Clearing before reuse matters here: a stale Question or
// Answer slice surviving into the next decode would leak one caller's
// packet contents into another's.
func PutMessage(msg *dnswire.Message) {
	if msg == nil {
		return
	}
	msg.Header = dnswire.Header{}
	msg.Question = msg.Question[:0]
	msg.Answer = msg.Answer[:0]
	msg.Authority = msg.Authority[:0]
	msg.Additional = msg.Additional[:0]
	messagePool.Put(msg)
}
