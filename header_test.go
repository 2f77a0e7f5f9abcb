package dnswire

import (
	"testing"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

func TestHeaderFlagRoundTrip(t *testing.T) {
	var h Header
	h.SetQR(true)
	h.SetOpcode(enum.OpcodeUpdate)
	h.SetAA(true)
	h.SetTC(true)
	h.SetRD(true)
	h.SetRA(true)
	h.SetRcode(enum.RcodeServerFailure)

	if !h.QR() || !h.AA() || !h.TC() || !h.RD() || !h.RA() {
		t.Errorf("flag bits did not round-trip: %+v", h)
	}
	if got := h.Opcode(); got != enum.OpcodeUpdate {
		t.Errorf("Opcode() = %d, want %d", got, enum.OpcodeUpdate)
	}
	if got := h.Rcode(); got != enum.RcodeServerFailure {
		t.Errorf("Rcode() = %d, want %d", got, enum.RcodeServerFailure)
	}
}

func TestHeaderFlagsIndependent(t *testing.T) {
	var h Header
	h.SetRD(true)
	if h.QR() || h.AA() || h.TC() || h.RA() {
		t.Errorf("setting RD alone perturbed other flags: %+v", h)
	}
	h.SetRD(false)
	if h.RD() {
		t.Error("SetRD(false) did not clear the bit")
	}
}

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := Header{ID: 0xABCD, QDCount: 1, ANCount: 2, NSCount: 3, ARCount: 4}
	h.SetQR(true)
	h.SetRD(true)

	buf := wire.NewWriteBuffer()
	if err := h.encode(buf); err != nil {
		t.Fatalf("encode() error: %v", err)
	}

	readBuf := wire.NewBuffer(buf.Bytes())
	got, err := decodeHeader(readBuf)
	if err != nil {
		t.Fatalf("decodeHeader() error: %v", err)
	}
	if got.ID != h.ID || got.QDCount != 1 || got.ANCount != 2 || got.NSCount != 3 || got.ARCount != 4 {
		t.Errorf("got %+v, want %+v", got, h)
	}
	if !got.QR() || !got.RD() {
		t.Errorf("decoded flags lost: QR=%v RD=%v", got.QR(), got.RD())
	}
}

func TestHeaderUpdateOpcodeAliases(t *testing.T) {
	h := Header{QDCount: 1, ANCount: 2, NSCount: 3, ARCount: 4}
	if h.ZOCount() != 1 || h.PRCount() != 2 || h.UPCount() != 3 || h.ADCount() != 4 {
		t.Errorf("UPDATE aliases = (%d,%d,%d,%d), want (1,2,3,4)", h.ZOCount(), h.PRCount(), h.UPCount(), h.ADCount())
	}
}

func TestHeaderZReservedPreserved(t *testing.T) {
	var h Header
	h.SetBitmap(0x0070) // bits 4-6 set, within the 3-bit Z field
	if got := h.Z(); got != 0x7 {
		t.Errorf("Z() = %#x, want 0x7", got)
	}
}
