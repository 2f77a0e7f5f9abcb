package dnswire

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/wire"
)

// Message is a full DNS packet: the 12-byte header plus its four
// sections. Parse and Pack are the only ways in and out of wire bytes;
// every field here is plain Go state in between.
type Message struct {
	Header     Header
	Question   []Question
	Answer     []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// Parse decodes a raw DNS packet into a Message.
func Parse(data []byte) (*Message, error) {
	buf := wire.NewCompressionBuffer(data)

	header, err := decodeHeader(&buf.Buffer)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	m := &Message{Header: header}

	m.Question = make([]Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		q, err := decodeQuestion(buf)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		m.Question = append(m.Question, q)
	}

	sections := []struct {
		count int
		name  string
		out   *[]ResourceRecord
	}{
		{int(header.ANCount), "answer", &m.Answer},
		{int(header.NSCount), "authority", &m.Authority},
		{int(header.ARCount), "additional", &m.Additional},
	}
	for _, sec := range sections {
		records := make([]ResourceRecord, 0, sec.count)
		for i := 0; i < sec.count; i++ {
			rr, err := decodeRR(buf)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", sec.name, i, err)
			}
			records = append(records, rr)
		}
		*sec.out = records
	}

	return m, nil
}

// Pack encodes the message to wire bytes. Section counts in the header
// are recomputed from the slice lengths, and a fresh compression cache is
// used for every call so Pack is safe to call more than once on the same
// Message.
func (m *Message) Pack() ([]byte, error) {
	h := m.Header
	h.QDCount = uint16(len(m.Question))
	h.ANCount = uint16(len(m.Answer))
	h.NSCount = uint16(len(m.Authority))
	h.ARCount = uint16(len(m.Additional))

	buf := wire.NewCompressionWriteBuffer()
	if err := h.encode(&buf.Buffer); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	for i, q := range m.Question {
		if err := q.encode(buf); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	for _, sec := range []struct {
		name string
		rrs  []ResourceRecord
	}{
		{"answer", m.Answer},
		{"authority", m.Authority},
		{"additional", m.Additional},
	} {
		for i, rr := range sec.rrs {
			if err := rr.encode(buf); err != nil {
				return nil, fmt.Errorf("%s %d: %w", sec.name, i, err)
			}
		}
	}
	return buf.Bytes(), nil
}

// AddQuestion appends a question and updates the header's count.
func (m *Message) AddQuestion(q Question) {
	m.Question = append(m.Question, q)
	m.Header.QDCount = uint16(len(m.Question))
}

// AddAnswer appends an answer record and updates the header's count.
func (m *Message) AddAnswer(rr ResourceRecord) {
	m.Answer = append(m.Answer, rr)
	m.Header.ANCount = uint16(len(m.Answer))
}

// AddAuthority appends an authority record and updates the header's count.
func (m *Message) AddAuthority(rr ResourceRecord) {
	m.Authority = append(m.Authority, rr)
	m.Header.NSCount = uint16(len(m.Authority))
}

// AddAdditional appends an additional record and updates the header's
// count.
func (m *Message) AddAdditional(rr ResourceRecord) {
	m.Additional = append(m.Additional, rr)
	m.Header.ARCount = uint16(len(m.Additional))
}

// Has reports whether any record across answer, authority or additional
// carries the given RR type.
func (m *Message) Has(rtype uint16) bool {
	for _, sec := range [][]ResourceRecord{m.Answer, m.Authority, m.Additional} {
		for _, rr := range sec {
			if rr.Type == rtype {
				return true
			}
		}
	}
	return false
}

// Reply builds a response Message for query: copies its ID, opcode and RD
// bit, sets QR, the given RA and AA flags, and appends the query's
// question section. When the question's qtype has an obvious plain-string
// RDATA mapping (A's dotted-quad, or CNAME/NS/PTR's target name), a single
// answer RR is built from data and appended too. Qtypes with no clean
// string mapping (MX, SOA, ...) yield a question-only skeleton; filling in
// the answer for those is the caller's responsibility. The caller fills in
// authority/additional and the RCODE.
func Reply(query *Message, data string, ra, aa bool) (*Message, error) {
	m := &Message{}
	m.Header.ID = query.Header.ID
	m.Header.SetOpcode(query.Header.Opcode())
	m.Header.SetRD(query.Header.RD())
	m.Header.SetQR(true)
	m.Header.SetRA(ra)
	m.Header.SetAA(aa)
	m.Question = append(m.Question, query.Question...)
	m.Header.QDCount = uint16(len(m.Question))

	if len(query.Question) == 0 {
		return m, nil
	}
	q := query.Question[0]

	var rd rdata.RDATA
	switch q.Type {
	case enum.TypeA:
		a, err := rdata.ParseA(data)
		if err != nil {
			return nil, fmt.Errorf("reply: %w", err)
		}
		rd = a
	case enum.TypeCNAME, enum.TypeNS, enum.TypePTR:
		target, err := label.New(data)
		if err != nil {
			return nil, fmt.Errorf("reply: %w", err)
		}
		rd = rdata.NewName(q.Type, target)
	default:
		return m, nil
	}

	m.AddAnswer(ResourceRecord{Name: q.Name, Type: q.Type, Class: q.Class, TTL: 0, RData: rd})
	return m, nil
}
