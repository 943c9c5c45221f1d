package controller

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rocketscienceinc/chess-client/internal/protocol"
)

// uploadPacing spaces chunk sends out; the wire protocol has no
// request/response coupling, so a fixed delay keeps the server's reader
// ahead of us.
const uploadPacing = 10 * time.Millisecond

// progressEvery throttles upload progress reporting to every Nth chunk.
const progressEvery = 10

// UploadGameFile - streams a game script to the server in upload_game
// chunks with metadata, paced by a fixed delay.
func (that *GameController) UploadGameFile(path string) error {
	log := that.logger.With("method", "UploadGameFile")

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat game file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open game file: %w", err)
	}
	defer file.Close()

	chunkSize := that.uploadChunkSize
	filename := filepath.Base(path)
	totalSize := info.Size()
	chunksTotal := int((totalSize + int64(chunkSize) - 1) / int64(chunkSize))

	log.Info("uploading game file", "filename", filename, "size", totalSize, "chunks", chunksTotal)

	buf := make([]byte, chunkSize)
	chunkCurrent := 0

	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			chunkCurrent++

			message := protocol.NewUploadGame(protocol.UploadMetadata{
				Filename:     filename,
				TotalSize:    totalSize,
				ChunksTotal:  chunksTotal,
				ChunkCurrent: chunkCurrent,
			}, string(buf[:n]))

			if err = that.session.Send(message); err != nil {
				return fmt.Errorf("failed to send chunk %d: %w", chunkCurrent, err)
			}

			if chunkCurrent%progressEvery == 0 || chunkCurrent == chunksTotal {
				percent := chunkCurrent * 100 / chunksTotal
				log.Info("upload progress", "percent", percent)
			}

			time.Sleep(uploadPacing)
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read game file: %w", readErr)
		}
	}

	log.Info("upload complete", "filename", filename)
	that.view.DisplaySuccess(fmt.Sprintf("Uploaded %s", filename))

	return nil
}
