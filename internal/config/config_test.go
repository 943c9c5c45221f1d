package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	// Given: no config file at the path
	conf := MustLoad(filepath.Join(t.TempDir(), "config.yml"))

	// Then: environment defaults apply
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, TransportTCP, conf.Transport)
	assert.Equal(t, "127.0.0.1:2000", conf.GetServerAddr())
	assert.Equal(t, "/tmp/chess_server.sock", conf.SocketPath)
	assert.Empty(t, conf.GameFile)
	assert.Equal(t, 4096, conf.UploadChunkSize)
}

func TestMustLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
log-level: "debug"
transport: "unix"
host: "chess.local"
port: "2020"
socket-path: "/run/chess.sock"
upload-chunk-size: 1024
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf := MustLoad(path)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, TransportUnix, conf.Transport)
	assert.Equal(t, "chess.local:2020", conf.GetServerAddr())
	assert.Equal(t, "/run/chess.sock", conf.SocketPath)
	assert.Equal(t, 1024, conf.UploadChunkSize)
}

func TestMustLoad_EnvOverride(t *testing.T) {
	t.Setenv("CHESS_TRANSPORT", "unix")
	t.Setenv("CHESS_PORT", "3000")

	conf := MustLoad(filepath.Join(t.TempDir(), "config.yml"))

	assert.Equal(t, TransportUnix, conf.Transport)
	assert.Equal(t, "127.0.0.1:3000", conf.GetServerAddr())
}
