package transport

import (
	"fmt"
	"log/slog"
	"net"
)

// UnixTransport is a Transport over a filesystem-addressed local stream
// socket. Byte-level semantics are identical to TCP, only the address form
// differs.
type UnixTransport struct {
	stream
}

// DialUnix - connects to a chess server listening on a Unix domain socket.
func DialUnix(logger *slog.Logger, path string) (*UnixTransport, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to socket %s: %w", path, err)
	}

	log := logger.With("component", "transport", "network", "unix", "path", path)
	log.Debug("Unix socket connection established")

	return &UnixTransport{stream: stream{logger: log, conn: conn}}, nil
}
