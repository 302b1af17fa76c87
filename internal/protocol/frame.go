package protocol

import "encoding/binary"

// HeaderLen is the fixed frame header size: opcode and payload length as
// two little-endian int32 values, with the JSON body following unpadded.
const HeaderLen = 8

// EncodeFrame prepends the wire header to payload and returns the complete
// outbound frame.
func EncodeFrame(op OpCode, payload []byte) []byte {
	buf := make([]byte, HeaderLen+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(op))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(payload)))
	copy(buf[HeaderLen:], payload)
	return buf
}

// DecodeHeader parses the fixed header. The caller is expected to read
// exactly the returned length of body bytes next.
func DecodeHeader(b []byte) (OpCode, int32, error) {
	if len(b) != HeaderLen {
		return 0, 0, ErrShortHeader
	}
	op := OpCode(int32(binary.LittleEndian.Uint32(b[0:4])))
	length := int32(binary.LittleEndian.Uint32(b[4:8]))
	if length < 0 {
		return 0, 0, ErrNegativeLength
	}
	return op, length, nil
}
