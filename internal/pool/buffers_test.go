package pool

import (
	"testing"

	"github.com/dnsscience/dnswire"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/label"
)

func TestMessagePool(t *testing.T) {
	msg := GetMessage()
	if msg == nil {
		t.Fatal("GetMessage() returned nil")
	}

	msg.Header.ID = 0x1234
	msg.AddQuestion(dnswire.Question{Name: label.MustNew("example.com."), Type: uint16(enum.TypeA), Class: uint16(enum.ClassIN)})

	PutMessage(msg)

	msg2 := GetMessage()
	if msg2.Header.ID != 0 {
		t.Errorf("message not reset: ID = %d, want 0", msg2.Header.ID)
	}
	if len(msg2.Question) != 0 {
		t.Errorf("message not reset: Question len = %d, want 0", len(msg2.Question))
	}
}

func TestGetBuffer(t *testing.T) {
	tests := []struct {
		size        int
		expectedCap int
	}{
		{100, SmallBufferSize},
		{512, SmallBufferSize},
		{1024, MediumBufferSize},
		{4096, MediumBufferSize},
		{8192, LargeBufferSize},
		{65535, LargeBufferSize},
	}

	for _, tt := range tests {
		buf := GetBuffer(tt.size)
		if cap(buf) != tt.expectedCap {
			t.Errorf("GetBuffer(%d) cap = %d, want %d", tt.size, cap(buf), tt.expectedCap)
		}
		PutBuffer(buf)
	}
}

func TestPutBufferUnrecognizedSizeDropped(t *testing.T) {
	// A buffer with a capacity matching none of the pools is simply
	// dropped rather than pooled; PutBuffer must not panic.
	PutBuffer(make([]byte, 0, 100))
}
