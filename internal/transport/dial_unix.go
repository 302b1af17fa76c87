//go:build !windows

package transport

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
)

// baseDirEnvVars are consulted in order; the first one that is set wins,
// whatever its value.
var baseDirEnvVars = []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"}

func dialEndpoint(index int) (io.ReadWriteCloser, error) {
	path := filepath.Join(baseDir(), fmt.Sprintf(socketNameFormat, index))
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func baseDir() string {
	for _, env := range baseDirEnvVars {
		if dir, ok := os.LookupEnv(env); ok {
			return dir
		}
	}
	return "/tmp/"
}
