package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestEncodeFrameRoundTrip(t *testing.T) {
	payload := []byte(`{"v":1,"client_id":"123456789012345678"}`)
	frame := EncodeFrame(OpHandshake, payload)

	if len(frame) != HeaderLen+len(payload) {
		t.Fatalf("frame length mismatch: got=%d want=%d", len(frame), HeaderLen+len(payload))
	}
	op, length, err := DecodeHeader(frame[:HeaderLen])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if op != OpHandshake {
		t.Fatalf("opcode mismatch: got=%d want=%d", op, OpHandshake)
	}
	if int(length) != len(payload) {
		t.Fatalf("length mismatch: got=%d want=%d", length, len(payload))
	}
	if !bytes.Equal(frame[HeaderLen:], payload) {
		t.Fatalf("payload mismatch: %q", frame[HeaderLen:])
	}
}

func TestEncodeFrameEmptyPayload(t *testing.T) {
	frame := EncodeFrame(OpClose, []byte("{}"))
	op, length, err := DecodeHeader(frame[:HeaderLen])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if op != OpClose || length != 2 {
		t.Fatalf("unexpected header: op=%d length=%d", op, length)
	}
}

func TestDecodeHeaderLittleEndian(t *testing.T) {
	// Opcode 1, length 16, byte-exact little-endian layout.
	raw := []byte{0x01, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00}
	op, length, err := DecodeHeader(raw)
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if op != OpFrame || length != 16 {
		t.Fatalf("unexpected header: op=%d length=%d", op, length)
	}
}

func TestDecodeHeaderShortInput(t *testing.T) {
	_, _, err := DecodeHeader([]byte{1, 2, 3})
	if !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}

func TestDecodeHeaderNegativeLength(t *testing.T) {
	raw := make([]byte, HeaderLen)
	binary.LittleEndian.PutUint32(raw[0:4], uint32(OpFrame))
	binary.LittleEndian.PutUint32(raw[4:8], 0xFFFFFFFF)
	_, _, err := DecodeHeader(raw)
	if !errors.Is(err, ErrNegativeLength) {
		t.Fatalf("expected ErrNegativeLength, got %v", err)
	}
}

func TestOpCodeValues(t *testing.T) {
	// Wire values are fixed by the remote client.
	want := map[OpCode]int32{
		OpHandshake: 0,
		OpFrame:     1,
		OpClose:     2,
		OpPing:      3,
		OpPong:      4,
	}
	for op, v := range want {
		if int32(op) != v {
			t.Fatalf("opcode %s: got=%d want=%d", op, int32(op), v)
		}
	}
}
