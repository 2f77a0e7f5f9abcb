// Package enum provides the bidirectional integer↔mnemonic maps used at
// the DNS wire format's API boundary (QTYPE, CLASS, QR, RCODE, OPCODE).
// They exist purely for display and for converting a caller-supplied
// mnemonic into the numeric code the wire format actually carries.
package enum

// Record type numbers (QTYPE) this codec has a dedicated RDATA codec for,
// plus the handful of others worth naming for display purposes.
const (
	TypeA      = 1
	TypeNS     = 2
	TypeCNAME  = 5
	TypeSOA    = 6
	TypePTR    = 12
	TypeMX     = 15
	TypeTXT    = 16
	TypeAAAA   = 28
	TypeNAPTR  = 35
	TypeOPT    = 41
	TypeDS     = 43
	TypeRRSIG  = 46
	TypeDNSKEY = 48
	TypeAny    = 255
)

// Class numbers (CLASS).
const (
	ClassIN     = 1
	ClassCS     = 2
	ClassCH     = 3
	ClassHesiod = 4
	ClassNone   = 254
	ClassAny    = 255
)

// Opcode numbers (OPCODE).
const (
	OpcodeQuery  = 0
	OpcodeIQuery = 1
	OpcodeStatus = 2
	OpcodeUpdate = 5
)

// Response codes (RCODE).
const (
	RcodeSuccess        = 0
	RcodeFormatError    = 1
	RcodeServerFailure  = 2
	RcodeNameError      = 3
	RcodeNotImplemented = 4
	RcodeRefused        = 5
	RcodeYXDomain       = 6
	RcodeYXRRSet        = 7
	RcodeNXRRSet        = 8
	RcodeNotAuth        = 9
	RcodeNotZone        = 10
	RcodeBadCookie      = 23
)

// Bimap is a small bidirectional map between a numeric code and its
// mnemonic string. Unknown codes and names never error: Name returns the
// map's configured sentinel for an unknown code, so callers can always
// print or compare without a type switch, and Code reports an unknown name
// as (0, false).
type Bimap struct {
	toName map[int]string
	toCode map[string]int
	none   string
}

// NewBimap builds a Bimap from code→name pairs. none is returned by Name
// for codes absent from the map.
func NewBimap(pairs map[int]string, none string) *Bimap {
	b := &Bimap{
		toName: make(map[int]string, len(pairs)),
		toCode: make(map[string]int, len(pairs)),
		none:   none,
	}
	for code, name := range pairs {
		b.toName[code] = name
		b.toCode[name] = code
	}
	return b
}

// Name returns the mnemonic for code, or the Bimap's none sentinel.
func (b *Bimap) Name(code int) string {
	if name, ok := b.toName[code]; ok {
		return name
	}
	return b.none
}

// Code returns the numeric code for name and whether it was found.
func (b *Bimap) Code(name string) (int, bool) {
	code, ok := b.toCode[name]
	return code, ok
}

// QTYPE maps record type numbers to mnemonics.
var QTYPE = NewBimap(map[int]string{
	TypeA: "A", TypeNS: "NS", TypeCNAME: "CNAME", TypeSOA: "SOA",
	TypePTR: "PTR", TypeMX: "MX", TypeTXT: "TXT", TypeAAAA: "AAAA",
	TypeNAPTR: "NAPTR", TypeOPT: "OPT", TypeDS: "DS", TypeRRSIG: "RRSIG",
	TypeDNSKEY: "DNSKEY", TypeAny: "*",
}, "")

// CLASS maps class numbers to mnemonics.
var CLASS = NewBimap(map[int]string{
	ClassIN: "IN", ClassCS: "CS", ClassCH: "CH", ClassHesiod: "Hesiod",
	ClassNone: "None", ClassAny: "*",
}, "")

// OPCODE maps opcode numbers to mnemonics.
var OPCODE = NewBimap(map[int]string{
	OpcodeQuery: "QUERY", OpcodeIQuery: "IQUERY", OpcodeStatus: "STATUS",
	OpcodeUpdate: "UPDATE",
}, "")

// QR maps the query/response bit to its mnemonic.
var QR = NewBimap(map[int]string{0: "QUERY", 1: "RESPONSE"}, "")

// RCODE maps response codes to mnemonics.
var RCODE = NewBimap(map[int]string{
	RcodeSuccess: "NOERROR", RcodeFormatError: "FORMERR", RcodeServerFailure: "SERVFAIL",
	RcodeNameError: "NXDOMAIN", RcodeNotImplemented: "NOTIMP", RcodeRefused: "REFUSED",
	RcodeYXDomain: "YXDOMAIN", RcodeYXRRSet: "YXRRSET", RcodeNXRRSet: "NXRRSET",
	RcodeNotAuth: "NOTAUTH", RcodeNotZone: "NOTZONE", RcodeBadCookie: "BADCOOKIE",
}, "None")
