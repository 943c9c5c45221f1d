package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/chess-client/internal"
	"github.com/rocketscienceinc/chess-client/internal/config"
)

// main - is the entry point of the client. It initializes the
// configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	applyFlags(conf)

	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		logger.Error("client failed", "error", err)
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// applyFlags - overrides file/env configuration with command-line flags.
func applyFlags(conf *config.Config) {
	local := flag.Bool("l", false, "use Unix domain socket instead of TCP")
	host := flag.String("i", conf.Host, "server IP address")
	port := flag.String("p", conf.Port, "server port")
	socketPath := flag.String("s", conf.SocketPath, "Unix socket path")
	gameFile := flag.String("f", conf.GameFile, "game file to upload (file mode)")
	verbose := flag.Bool("v", false, "enable verbose logging")

	flag.Parse()

	if *local {
		conf.Transport = config.TransportUnix
	}
	conf.Host = *host
	conf.Port = *port
	conf.SocketPath = *socketPath
	conf.GameFile = *gameFile

	if *verbose {
		conf.LogLevel = "debug"
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
