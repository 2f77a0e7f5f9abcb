// Package edns implements EDNS0 option codecs layered on rdata.OPT: DNS
// Cookies (RFC 7873, RFC 9018) today, with room to grow the way
// rdata.Register lets new RR types register themselves.
//
// This is deliberately smaller than a production cookie manager: it
// computes and verifies a single server cookie against one secret and
// leaves secret rotation, clustering and statistics to the caller. See
// DESIGN.md for what was trimmed and why.
package edns

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"

	"github.com/dchest/siphash"

	"github.com/dnsscience/dnswire/rdata"
)

// OptionCodeCookie is the EDNS0 option code for DNS Cookies (RFC 7873 §4).
const OptionCodeCookie = 10

const (
	clientCookieSize    = 8
	minServerCookieSize = 8
	maxServerCookieSize = 32
	cookieVersion       = 1
)

var (
	ErrShortClientCookie = errors.New("edns: client cookie shorter than 8 bytes")
	ErrServerCookieSize  = errors.New("edns: server cookie must be 8-32 bytes")
)

// Cookie is a parsed COOKIE option payload: an 8-byte client cookie and
// an optional 8-32 byte server cookie (RFC 7873 §4).
type Cookie struct {
	Client [8]byte
	Server []byte
}

// ParseCookie decodes a COOKIE option's raw data.
func ParseCookie(data []byte) (Cookie, error) {
	var c Cookie
	if len(data) < clientCookieSize {
		return Cookie{}, ErrShortClientCookie
	}
	copy(c.Client[:], data[:clientCookieSize])
	if len(data) == clientCookieSize {
		return c, nil
	}
	server := data[clientCookieSize:]
	if len(server) < minServerCookieSize || len(server) > maxServerCookieSize {
		return Cookie{}, ErrServerCookieSize
	}
	c.Server = append([]byte(nil), server...)
	return c, nil
}

// Encode renders the cookie back into COOKIE option data.
func (c Cookie) Encode() []byte {
	out := make([]byte, clientCookieSize+len(c.Server))
	copy(out, c.Client[:])
	copy(out[clientCookieSize:], c.Server)
	return out
}

// ComputeServerCookie derives an 8-byte server cookie from the given
// secret, the client's cookie, the client's source IP and a timestamp,
// using SipHash-2-4 over client cookie, client IP, version byte plus three
// zero bytes, and the big-endian timestamp, in that order. The result is
// the bare 8-byte hash; no version or timestamp fields are prepended.
func ComputeServerCookie(secret [16]byte, client [8]byte, clientIP []byte, timestamp uint32) [8]byte {
	h := siphash.New(secret[:])
	h.Write(client[:])
	h.Write(clientIP)
	h.Write([]byte{cookieVersion, 0, 0, 0})
	var ts [4]byte
	binary.BigEndian.PutUint32(ts[:], timestamp)
	h.Write(ts[:])

	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], h.Sum64())
	return out
}

// Verify reports whether c's server cookie matches the one this secret,
// client IP and timestamp would have produced, in constant time.
func Verify(secret [16]byte, c Cookie, clientIP []byte, timestamp uint32) bool {
	if len(c.Server) != minServerCookieSize {
		return false
	}
	want := ComputeServerCookie(secret, c.Client, clientIP, timestamp)
	return subtle.ConstantTimeCompare(c.Server, want[:]) == 1
}

// FindCookie looks for a COOKIE option among opt's options.
func FindCookie(opt *rdata.OPT) (Cookie, bool, error) {
	for _, o := range opt.Options {
		if o.Code == OptionCodeCookie {
			c, err := ParseCookie(o.Data)
			return c, true, err
		}
	}
	return Cookie{}, false, nil
}

// SetCookie replaces any existing COOKIE option in opt with c, or
// appends one if none is present.
func SetCookie(opt *rdata.OPT, c Cookie) {
	data := c.Encode()
	for i, o := range opt.Options {
		if o.Code == OptionCodeCookie {
			opt.Options[i].Data = data
			return
		}
	}
	opt.Options = append(opt.Options, rdata.OPTOption{Code: OptionCodeCookie, Data: data})
}
