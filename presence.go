package discordrp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/danmuck/discordrp/internal/protocol"
	"github.com/danmuck/discordrp/internal/transport"
)

// Activity validation failures arrive wrapped in this fixed diagnostic
// text. The unwrap is best effort: if the remote wording ever changes,
// the raw message is surfaced as-is.
const (
	validationPrefix = `child "activity" fails because [`
	validationSuffix = `]`
)

// Presence is one live session with the local Discord client. It owns its
// transport exclusively and must not be used from multiple goroutines at
// once.
type Presence struct {
	clientID string
	conn     transport.Conn
	log      zerolog.Logger
	closed   bool
}

// Option adjusts a Presence during Connect.
type Option func(*Presence)

// WithLogger attaches a logger for session diagnostics. The default is a
// no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Presence) { p.log = log }
}

// Connect discovers the local IPC endpoint, performs the handshake for
// clientID, and returns a ready Presence. No Presence escapes a failed
// handshake: the transport is closed before the error is returned.
func Connect(clientID string, opts ...Option) (*Presence, error) {
	conn, err := transport.Dial()
	if err != nil {
		return nil, err
	}
	return connect(conn, clientID, opts...)
}

func connect(conn transport.Conn, clientID string, opts ...Option) (*Presence, error) {
	p := &Presence{
		clientID: clientID,
		conn:     conn,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	p.log.Debug().Str("client_id", clientID).Msg("presence ready")
	return p, nil
}

func (p *Presence) handshake() error {
	hello := protocol.Handshake{
		V:        protocol.HandshakeVersion,
		ClientID: p.clientID,
	}
	reply, err := p.roundTrip(protocol.OpHandshake, hello)
	if err != nil {
		return err
	}
	if reply.Evt == protocol.EvtReady {
		return nil
	}
	data, err := reply.ErrorData()
	if err != nil {
		return err
	}
	if data.Code == protocol.CodeInvalidPayload {
		// During handshake this code is diagnostic of a bad client id.
		return fmt.Errorf("%w: %s", ErrInvalidClientID, data.Message)
	}
	return &ServerError{Code: data.Code, Message: data.Message}
}

// Set sends an activity payload to Discord. A nil activity clears the
// displayed state. The payload is relayed untouched; remote validation
// failures come back as ErrInvalidActivity and may be retried with a
// corrected payload on the same session.
func (p *Presence) Set(activity any) error {
	if p.closed {
		return ErrClosed
	}
	cmd := protocol.Command{
		Cmd: protocol.CmdSetActivity,
		Args: protocol.CommandArgs{
			PID:      os.Getpid(),
			Activity: activity,
		},
		Nonce: uuid.NewString(),
	}
	reply, err := p.roundTrip(protocol.OpFrame, cmd)
	if err != nil {
		return err
	}
	if reply.Evt != protocol.EvtError {
		p.log.Debug().Str("nonce", cmd.Nonce).Msg("activity updated")
		return nil
	}
	data, err := reply.ErrorData()
	if err != nil {
		return err
	}
	if data.Code == protocol.CodeInvalidPayload {
		return fmt.Errorf("%w: %s", ErrInvalidActivity, unwrapValidationMessage(data.Message))
	}
	return &ServerError{Code: data.Code, Message: data.Message}
}

// Clear removes the displayed activity.
func (p *Presence) Clear() error {
	return p.Set(nil)
}

// Close sends the close frame and releases the transport. The transport
// is closed even when the close frame cannot be delivered. Close is
// idempotent and safe to defer alongside an explicit call.
func (p *Presence) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if err := p.send(protocol.OpClose, struct{}{}); err != nil {
		p.log.Debug().Err(err).Msg("close frame not delivered")
	}
	return p.conn.Close()
}

func (p *Presence) roundTrip(op protocol.OpCode, payload any) (protocol.Reply, error) {
	if err := p.send(op, payload); err != nil {
		return protocol.Reply{}, err
	}
	return p.readReply()
}

func (p *Presence) send(op protocol.OpCode, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", op, err)
	}
	return p.conn.WriteAll(protocol.EncodeFrame(op, body))
}

func (p *Presence) readReply() (protocol.Reply, error) {
	head, err := p.conn.ReadExact(protocol.HeaderLen)
	if err != nil {
		return protocol.Reply{}, err
	}
	_, length, err := protocol.DecodeHeader(head)
	if err != nil {
		return protocol.Reply{}, err
	}
	body, err := p.conn.ReadExact(int(length))
	if err != nil {
		return protocol.Reply{}, err
	}
	return protocol.DecodeReply(body)
}

func unwrapValidationMessage(msg string) string {
	if strings.HasPrefix(msg, validationPrefix) && strings.HasSuffix(msg, validationSuffix) {
		return msg[len(validationPrefix) : len(msg)-len(validationSuffix)]
	}
	return msg
}
