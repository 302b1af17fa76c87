package protocol

import (
	"encoding/json"
	"fmt"
)

const (
	// HandshakeVersion is the only IPC protocol version the Discord
	// client accepts.
	HandshakeVersion = 1

	CmdSetActivity = "SET_ACTIVITY"

	EvtReady = "READY"
	EvtError = "ERROR"

	// CodeInvalidPayload is returned by the remote side both for a
	// malformed/unregistered client id (during handshake) and for an
	// activity payload that fails its schema validation.
	CodeInvalidPayload = 4000
)

// Handshake is the first frame sent on a fresh connection.
type Handshake struct {
	V        int    `json:"v"`
	ClientID string `json:"client_id"`
}

// Command is the envelope for an activity update. Activity is opaque to
// this package: the remote side owns its schema.
type Command struct {
	Cmd   string      `json:"cmd"`
	Args  CommandArgs `json:"args"`
	Nonce string      `json:"nonce"`
}

type CommandArgs struct {
	PID      int `json:"pid"`
	Activity any `json:"activity"`
}

// Reply is one inbound frame body. Data is decoded lazily: on READY it
// carries server/user details this client does not consume, on ERROR it
// carries an ErrorData.
type Reply struct {
	Evt  string          `json:"evt"`
	Data json.RawMessage `json:"data"`
}

// ErrorData is the payload of an evt="ERROR" reply.
type ErrorData struct {
	Message string `json:"message"`
	Code    int32  `json:"code"`
}

// ErrorData extracts the error details from an ERROR reply. A reply whose
// data block does not decode is a malformed frame.
func (r Reply) ErrorData() (ErrorData, error) {
	var data ErrorData
	if len(r.Data) == 0 {
		return ErrorData{}, fmt.Errorf("%w: error reply without data", ErrMalformedFrame)
	}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return ErrorData{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return data, nil
}

// DecodeReply parses one frame body.
func DecodeReply(body []byte) (Reply, error) {
	var reply Reply
	if err := json.Unmarshal(body, &reply); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	return reply, nil
}
