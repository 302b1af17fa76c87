package discordrp

import (
	"errors"
	"fmt"

	"github.com/danmuck/discordrp/internal/protocol"
	"github.com/danmuck/discordrp/internal/transport"
)

// Sentinel errors surfaced by Connect and Presence operations. Match with
// errors.Is; the remote detail, when present, is carried in the wrapped
// message.
var (
	// ErrNoEndpoint means no discord-ipc endpoint existed across the
	// whole index range; Discord is most likely not running.
	ErrNoEndpoint = transport.ErrNoEndpoint

	// ErrClosedEarly means the endpoint stopped responding mid-frame.
	ErrClosedEarly = transport.ErrClosedEarly

	// ErrMalformedFrame means an inbound header or JSON body failed to
	// decode; the session should be considered unusable.
	ErrMalformedFrame = protocol.ErrMalformedFrame

	// ErrInvalidClientID is the handshake rejection for a malformed or
	// unregistered client id.
	ErrInvalidClientID = errors.New("discordrp: invalid client id")

	// ErrInvalidActivity is the remote rejection of an activity payload.
	// The caller may retry with a corrected payload on the same session.
	ErrInvalidActivity = errors.New("discordrp: invalid activity")

	// ErrClosed is returned by operations attempted after Close.
	ErrClosed = errors.New("discordrp: presence closed")
)

// ServerError is any remote rejection not covered by a sentinel above,
// carrying the remote message and code verbatim.
type ServerError struct {
	Code    int32
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("discordrp: server error %d: %s", e.Code, e.Message)
}
