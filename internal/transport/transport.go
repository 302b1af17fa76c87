package transport

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// socketNameFormat is the well-known endpoint name used by the Discord
// client, indexed 0..9.
const (
	socketNameFormat = "discord-ipc-%d"
	maxEndpoints     = 10
)

var (
	ErrNoEndpoint  = errors.New("transport: no discord ipc endpoint found")
	ErrClosedEarly = errors.New("transport: connection closed prematurely")
)

// Conn is one established IPC byte stream. A Conn is owned by exactly one
// session and is not safe for concurrent use.
type Conn interface {
	// ReadExact blocks until exactly n bytes have been read, tolerating
	// short reads from the underlying stream.
	ReadExact(n int) ([]byte, error)
	// WriteAll blocks until the whole buffer has been written.
	WriteAll(p []byte) error
	Close() error
}

// Dial scans the endpoint index range in ascending order and returns a
// Conn for the first endpoint that exists and accepts. Missing endpoints
// continue the scan; any other connect failure aborts it. If no endpoint
// exists at all, Dial fails with ErrNoEndpoint.
func Dial() (Conn, error) {
	for i := 0; i < maxEndpoints; i++ {
		rwc, err := dialEndpoint(i)
		if err == nil {
			return &stream{rwc: rwc}, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, fmt.Errorf("transport: endpoint %d: %w", i, err)
	}
	return nil, ErrNoEndpoint
}

type stream struct {
	rwc io.ReadWriteCloser
}

func (s *stream) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	off := 0
	for off < n {
		m, err := s.rwc.Read(buf[off:])
		off += m
		if err != nil {
			if off == n {
				break
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrClosedEarly
			}
			return nil, err
		}
		if m == 0 {
			// A zero-byte read without an error also means the peer
			// is gone; looping on it would never terminate.
			return nil, ErrClosedEarly
		}
	}
	return buf, nil
}

func (s *stream) WriteAll(p []byte) error {
	for len(p) > 0 {
		m, err := s.rwc.Write(p)
		if err != nil {
			return err
		}
		p = p[m:]
	}
	return nil
}

func (s *stream) Close() error {
	return s.rwc.Close()
}
