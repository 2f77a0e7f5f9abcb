// Package txid generates the two values a query needs to resist
// off-path cache-poisoning guesses: the message header's transaction ID
// and, for callers that manage their own sockets, a randomized UDP
// source port. Both come from crypto/rand, never math/rand.
package txid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// TransactionID returns a cryptographically random 16-bit transaction ID
// for Header.ID. math/rand is predictable and must never be used here.
func TransactionID() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return binary.BigEndian.Uint16(buf[:])
}

// ephemeral source port range, avoiding privileged ports and the upper
// range some systems reserve for other services.
const (
	minPort   = 32768
	portRange = 61000 - minPort
)

// SourcePort returns a cryptographically random UDP source port in
// [32768, 61000).
func SourcePort() uint16 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	offset := binary.BigEndian.Uint32(buf[:]) % portRange
	return uint16(minPort + offset)
}
