package transport

import (
	"fmt"
	"log/slog"
	"net"
)

// TCPTransport is a Transport over a network-addressed stream socket.
type TCPTransport struct {
	stream
}

// DialTCP - connects to a chess server at host:port over TCP.
func DialTCP(logger *slog.Logger, addr string) (*TCPTransport, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	log := logger.With("component", "transport", "network", "tcp", "addr", addr)
	log.Debug("TCP connection established")

	return &TCPTransport{stream: stream{logger: log, conn: conn}}, nil
}
