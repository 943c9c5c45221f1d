package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/chess-client/internal/apperror"
	"github.com/rocketscienceinc/chess-client/internal/transport"
)

// Session owns one Transport plus its framing buffer and receive-loop
// lifecycle. Incoming bytes are reassembled into newline-delimited messages
// and handed to the message handler in arrival order; outgoing messages are
// serialized as one JSON object plus a trailing newline.
type Session struct {
	logger    *slog.Logger
	transport transport.Transport
	handler   func(message string)

	// onDisconnect is invoked once when the peer terminates the connection.
	onDisconnect func()

	active atomic.Bool

	// mu guards buffer against the receive callback and a concurrent close.
	mu     sync.Mutex
	buffer []byte
}

// New - creates a session over a connected transport. handler receives each
// complete message; onDisconnect may be nil.
func New(logger *slog.Logger, tr transport.Transport, handler func(message string), onDisconnect func()) *Session {
	return &Session{
		logger:       logger.With("component", "session", "conn_id", uuid.NewString()),
		transport:    tr,
		handler:      handler,
		onDisconnect: onDisconnect,
	}
}

// Start - activates the session and begins the transport receive loop.
func (that *Session) Start() {
	that.active.Store(true)

	that.transport.Start(that.onData, that.onClosed)

	that.logger.Debug("session started")
}

// Send - serializes one message as a JSON line and writes it out.
// It fails with apperror.ErrSessionNotActive when the session is inactive.
func (that *Session) Send(message any) error {
	log := that.logger.With("method", "Send")

	if !that.active.Load() {
		log.Warn("cannot send: session is not active")
		return apperror.ErrSessionNotActive
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err = that.transport.Send(append(payload, '\n')); err != nil {
		log.Error("failed to send message", "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug("message sent", "payload", string(payload))

	return nil
}

// Active - reports whether the session is accepting traffic.
func (that *Session) Active() bool {
	return that.active.Load()
}

// Close - deactivates the session and tears down the transport. Only the
// first caller performs the teardown; later calls are no-ops.
func (that *Session) Close() {
	if !that.active.CompareAndSwap(true, false) {
		return
	}

	if err := that.transport.Close(); err != nil {
		that.logger.Error("failed to close transport", "error", err)
	}

	that.logger.Debug("session closed")
}

// onData - accumulates a chunk and drains every complete message from the
// buffer, strictly left to right. A chunk may complete several messages or
// none at all.
func (that *Session) onData(chunk []byte) {
	if !that.active.Load() {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.buffer = append(that.buffer, chunk...)

	for {
		pos := bytes.IndexByte(that.buffer, '\n')
		if pos < 0 {
			return
		}

		message := string(that.buffer[:pos])
		that.buffer = that.buffer[pos+1:]

		that.handleMessage(message)
	}
}

// handleMessage - hands one complete message to the handler.
func (that *Session) handleMessage(message string) {
	if !that.active.Load() {
		return
	}

	that.handler(message)
}

// onClosed - reacts to the receive loop exiting. A peer-initiated shutdown
// deactivates the session and fires the disconnect callback; after a local
// Close the flag is already down and nothing happens.
func (that *Session) onClosed() {
	if !that.active.CompareAndSwap(true, false) {
		return
	}

	if err := that.transport.Close(); err != nil {
		that.logger.Error("failed to close transport", "error", err)
	}

	that.logger.Info("session ended by peer")

	if that.onDisconnect != nil {
		that.onDisconnect()
	}
}
