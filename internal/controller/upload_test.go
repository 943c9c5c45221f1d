package controller

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/chess-client/internal/game"
	"github.com/rocketscienceinc/chess-client/internal/protocol"
	"github.com/rocketscienceinc/chess-client/internal/state"
)

// writeGameFile - creates a temp game script and returns its path.
func writeGameFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newUploadController(t *testing.T, chunkSize int) (*GameController, *fakeSession) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := &fakeSession{active: true}

	gameController := New(logger, state.NewContext(), game.NewModel(), &fakeView{}, chunkSize)
	gameController.SetSession(fs)

	return gameController, fs
}

func TestUploadGameFile_ChunksAndMetadata(t *testing.T) {
	// Given: a 25-byte script and a 10-byte chunk size
	content := "e2 e4\ne7 e5\ng1 f3\nb8 c6\n!"
	require.Len(t, content, 25)

	gameController, fs := newUploadController(t, 10)
	path := writeGameFile(t, content)

	// When: the file is uploaded
	require.NoError(t, gameController.UploadGameFile(path))

	// Then: three chunks with consistent metadata, data reassembles to the
	// original content
	require.Len(t, fs.sent, 3)

	var reassembled strings.Builder
	for i, message := range fs.sent {
		command, ok := message.(protocol.UploadGameCommand)
		require.True(t, ok)

		assert.Equal(t, protocol.CommandUploadGame, command.Command)
		assert.Equal(t, "game.txt", command.Metadata.Filename)
		assert.Equal(t, int64(25), command.Metadata.TotalSize)
		assert.Equal(t, 3, command.Metadata.ChunksTotal)
		assert.Equal(t, i+1, command.Metadata.ChunkCurrent)

		reassembled.WriteString(command.Data)
	}

	assert.Equal(t, content, reassembled.String())
	assert.Len(t, fs.sent[2].(protocol.UploadGameCommand).Data, 5)
}

func TestUploadGameFile_SingleChunk(t *testing.T) {
	gameController, fs := newUploadController(t, 4096)
	path := writeGameFile(t, "e2 e4\n")

	require.NoError(t, gameController.UploadGameFile(path))

	require.Len(t, fs.sent, 1)
	command := fs.sent[0].(protocol.UploadGameCommand)
	assert.Equal(t, 1, command.Metadata.ChunksTotal)
	assert.Equal(t, 1, command.Metadata.ChunkCurrent)
	assert.Equal(t, "e2 e4\n", command.Data)
}

func TestUploadGameFile_MissingFile(t *testing.T) {
	gameController, fs := newUploadController(t, 4096)

	// When: the path does not exist
	err := gameController.UploadGameFile(filepath.Join(t.TempDir(), "nope.txt"))

	// Then: the stat error is surfaced and nothing is sent
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to stat game file")
	assert.Empty(t, fs.sent)
}

func TestUploadGameFile_SendFailureAborts(t *testing.T) {
	gameController, fs := newUploadController(t, 10)
	fs.sendErr = io.ErrClosedPipe
	path := writeGameFile(t, strings.Repeat("x", 30))

	err := gameController.UploadGameFile(path)

	require.ErrorIs(t, err, io.ErrClosedPipe)
	assert.ErrorContains(t, err, "failed to send chunk 1")
}
