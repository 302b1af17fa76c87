package transport

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// scriptedStream feeds ReadExact one scripted chunk per Read call and
// caps the size of each Write, to exercise short-read/short-write paths.
type scriptedStream struct {
	reads      [][]byte
	readErr    error
	writes     bytes.Buffer
	writeLimit int
	writeErr   error
	closed     bool
}

func (s *scriptedStream) Read(p []byte) (int, error) {
	if len(s.reads) == 0 {
		if s.readErr != nil {
			return 0, s.readErr
		}
		return 0, io.EOF
	}
	chunk := s.reads[0]
	s.reads = s.reads[1:]
	return copy(p, chunk), nil
}

func (s *scriptedStream) Write(p []byte) (int, error) {
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	n := len(p)
	if s.writeLimit > 0 && n > s.writeLimit {
		n = s.writeLimit
	}
	s.writes.Write(p[:n])
	return n, nil
}

func (s *scriptedStream) Close() error {
	s.closed = true
	return nil
}

func TestReadExactAccumulatesChunks(t *testing.T) {
	src := &scriptedStream{reads: [][]byte{
		[]byte("0123456789"),
		[]byte("abcdef"),
	}}
	conn := &stream{rwc: src}

	got, err := conn.ReadExact(16)
	if err != nil {
		t.Fatalf("read exact: %v", err)
	}
	if string(got) != "0123456789abcdef" {
		t.Fatalf("unexpected bytes: %q", got)
	}
}

func TestReadExactZeroReadFails(t *testing.T) {
	src := &scriptedStream{reads: [][]byte{
		[]byte("0123"),
		{},
	}}
	conn := &stream{rwc: src}

	_, err := conn.ReadExact(8)
	if !errors.Is(err, ErrClosedEarly) {
		t.Fatalf("expected ErrClosedEarly, got %v", err)
	}
}

func TestReadExactEOFBeforeComplete(t *testing.T) {
	src := &scriptedStream{reads: [][]byte{[]byte("0123")}}
	conn := &stream{rwc: src}

	_, err := conn.ReadExact(8)
	if !errors.Is(err, ErrClosedEarly) {
		t.Fatalf("expected ErrClosedEarly, got %v", err)
	}
}

func TestReadExactPropagatesOtherErrors(t *testing.T) {
	readErr := errors.New("reset by peer")
	src := &scriptedStream{readErr: readErr}
	conn := &stream{rwc: src}

	_, err := conn.ReadExact(4)
	if !errors.Is(err, readErr) {
		t.Fatalf("expected scripted error, got %v", err)
	}
}

func TestWriteAllShortWrites(t *testing.T) {
	src := &scriptedStream{writeLimit: 3}
	conn := &stream{rwc: src}

	if err := conn.WriteAll([]byte("0123456789")); err != nil {
		t.Fatalf("write all: %v", err)
	}
	if src.writes.String() != "0123456789" {
		t.Fatalf("unexpected written bytes: %q", src.writes.String())
	}
}

func TestWriteAllPropagatesErrors(t *testing.T) {
	writeErr := errors.New("broken pipe")
	src := &scriptedStream{writeErr: writeErr}
	conn := &stream{rwc: src}

	if err := conn.WriteAll([]byte("x")); !errors.Is(err, writeErr) {
		t.Fatalf("expected scripted error, got %v", err)
	}
}

func TestCloseReleasesStream(t *testing.T) {
	src := &scriptedStream{}
	conn := &stream{rwc: src}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !src.closed {
		t.Fatalf("underlying stream not closed")
	}
}
