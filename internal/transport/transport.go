package transport

import (
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/rocketscienceinc/chess-client/internal/apperror"
)

// readBufferSize is the maximum number of bytes consumed per read.
const readBufferSize = 4096

// Transport is the byte-stream capability set shared by the TCP and Unix
// socket implementations: a single write attempt, an asynchronous receive
// loop and an idempotent close.
type Transport interface {
	// Send writes data to the peer in a single attempt.
	// It fails with apperror.ErrTransportClosed once the transport is closed.
	Send(data []byte) error

	// Start begins the background receive loop without blocking the caller.
	// onData is invoked once per successful read with the received chunk;
	// the chunk is only valid for the duration of the call. onClosed is
	// invoked exactly once when the loop exits, whether the peer closed the
	// connection or Close was called locally.
	Start(onData func(chunk []byte), onClosed func())

	// Close tears the connection down. Closing an already-closed transport
	// is a no-op.
	Close() error
}

// stream carries the shared byte-stream behavior over a connected net.Conn.
type stream struct {
	logger  *slog.Logger
	conn    net.Conn
	closed  atomic.Bool
	started atomic.Bool
}

// Send - writes data to the connection in a single non-blocking attempt.
func (that *stream) Send(data []byte) error {
	if that.closed.Load() {
		return apperror.ErrTransportClosed
	}

	if _, err := that.conn.Write(data); err != nil {
		return fmt.Errorf("failed to write to connection: %w", err)
	}

	return nil
}

// Start - spawns the reader goroutine feeding onData.
func (that *stream) Start(onData func(chunk []byte), onClosed func()) {
	if !that.started.CompareAndSwap(false, true) {
		that.logger.Warn("receive loop already started")
		return
	}

	go that.readLoop(onData, onClosed)
}

// readLoop - reads until the connection is closed by either side.
func (that *stream) readLoop(onData func(chunk []byte), onClosed func()) {
	log := that.logger.With("method", "readLoop")

	defer onClosed()

	buf := make([]byte, readBufferSize)

	for {
		n, err := that.conn.Read(buf)
		if n > 0 {
			onData(buf[:n])
		}

		if err == nil {
			continue
		}

		if that.closed.Load() {
			log.Debug("receive loop stopped: transport closed locally")
			return
		}

		log.Info("server closed connection", "error", err)
		return
	}
}

// Close - closes the underlying connection; only the first call tears down.
func (that *stream) Close() error {
	if !that.closed.CompareAndSwap(false, true) {
		return nil
	}

	if err := that.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}
