package suite

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite runs an in-process scripted chess server on a real listener, so
// transport and session tests exercise actual socket I/O in both TCP and
// Unix-socket modes.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	listener net.Listener
	connCh   chan net.Conn
	conn     net.Conn
	reader   *bufio.Reader
}

// New - starts a scripted server on a loopback TCP listener.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	return newSuite(t, "tcp", "127.0.0.1:0")
}

// NewUnix - starts a scripted server on a Unix domain socket.
func NewUnix(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	return newSuite(t, "unix", filepath.Join(t.TempDir(), "chess.sock"))
}

func newSuite(t *testing.T, network, addr string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	listener, err := net.Listen(network, addr)
	if err != nil {
		t.Fatalf("could not listen on %s %s: %v", network, addr, err)
	}

	st := &Suite{
		T:        t,
		Logger:   logger,
		listener: listener,
		connCh:   make(chan net.Conn, 1),
	}

	// Accept a single client connection in the background.
	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr != nil {
			return
		}
		st.connCh <- conn
	}()

	t.Cleanup(func() {
		_ = listener.Close()
		if st.conn != nil {
			_ = st.conn.Close()
		}
	})

	return ctx, st
}

// Addr - returns the address clients should dial.
func (that *Suite) Addr() string {
	return that.listener.Addr().String()
}

// WaitConn - blocks until the client has connected.
func (that *Suite) WaitConn() net.Conn {
	that.Helper()

	if that.conn != nil {
		return that.conn
	}

	select {
	case conn := <-that.connCh:
		that.conn = conn
		that.reader = bufio.NewReader(conn)
	case <-time.After(maxWaitDuration):
		that.Fatalf("client did not connect in time")
	}

	return that.conn
}

// SendLine - writes one newline-terminated message to the client.
func (that *Suite) SendLine(line string) {
	that.Helper()
	that.SendRaw([]byte(line + "\n"))
}

// SendRaw - writes raw bytes to the client, allowing tests to split or
// batch messages at arbitrary offsets.
func (that *Suite) SendRaw(data []byte) {
	that.Helper()

	conn := that.WaitConn()
	if _, err := conn.Write(data); err != nil {
		that.Fatalf("could not write to client: %v", err)
	}
}

// ReadLine - reads one newline-terminated message sent by the client.
func (that *Suite) ReadLine() string {
	that.Helper()

	that.WaitConn()

	if err := that.conn.SetReadDeadline(time.Now().Add(maxWaitDuration)); err != nil {
		that.Fatalf("could not set read deadline: %v", err)
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		that.Fatalf("could not read from client: %v", err)
	}

	return strings.TrimSuffix(line, "\n")
}

// CloseConn - terminates the connection from the server side.
func (that *Suite) CloseConn() {
	that.Helper()

	conn := that.WaitConn()
	_ = conn.Close()
}
