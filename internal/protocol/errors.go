package protocol

import "errors"

var (
	ErrShortHeader    = errors.New("protocol: short frame header")
	ErrNegativeLength = errors.New("protocol: negative payload length")
	ErrMalformedFrame = errors.New("protocol: malformed frame payload")
)
