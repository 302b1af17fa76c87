//go:build windows

package transport

import (
	"fmt"
	"io"
	"os"
)

// Named pipes take no directory resolution: the pipe namespace is flat.
const pipePrefix = `\\.\pipe\`

func dialEndpoint(index int) (io.ReadWriteCloser, error) {
	path := pipePrefix + fmt.Sprintf(socketNameFormat, index)
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}
