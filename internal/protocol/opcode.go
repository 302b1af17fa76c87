package protocol

// OpCode tags the semantic type of one IPC frame. Values are fixed by the
// Discord client and travel on the wire as little-endian int32.
type OpCode int32

const (
	OpHandshake OpCode = 0
	OpFrame     OpCode = 1
	OpClose     OpCode = 2
	OpPing      OpCode = 3
	OpPong      OpCode = 4
)

func (op OpCode) String() string {
	switch op {
	case OpHandshake:
		return "handshake"
	case OpFrame:
		return "frame"
	case OpClose:
		return "close"
	case OpPing:
		return "ping"
	case OpPong:
		return "pong"
	default:
		return "unknown"
	}
}
