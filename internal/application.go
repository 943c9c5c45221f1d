package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/chess-client/internal/config"
	"github.com/rocketscienceinc/chess-client/internal/controller"
	"github.com/rocketscienceinc/chess-client/internal/game"
	"github.com/rocketscienceinc/chess-client/internal/router"
	"github.com/rocketscienceinc/chess-client/internal/session"
	"github.com/rocketscienceinc/chess-client/internal/state"
	"github.com/rocketscienceinc/chess-client/internal/transport"
	"github.com/rocketscienceinc/chess-client/internal/view"
)

// RunApp - runs the chess client: dials the server, wires the session,
// router and controller together and drives the selected game mode until
// shutdown.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	tr, err := dial(logger, conf)
	if err != nil {
		return fmt.Errorf("could not connect to server: %w", err)
	}

	clientState := state.NewContext()
	model := game.NewModel()
	consoleView := view.NewConsole(os.Stdin, os.Stdout)

	gameController := controller.New(logger, clientState, model, consoleView, conf.UploadChunkSize)
	messageRouter := router.New(logger, clientState, model, consoleView, gameController.ShowMenu)

	sess := session.New(logger, tr, messageRouter.Route, func() {
		clientState.OnDisconnected()
		cancel()
	})
	gameController.SetSession(sess)

	defer func() {
		sess.Close()
		consoleView.Cleanup()
		log.Info("Client stopped")
	}()

	sess.Start()
	consoleView.DisplayWelcome()

	if conf.GameFile != "" {
		log.Info("Running file mode", "file", conf.GameFile)
		if err = gameController.UploadGameFile(conf.GameFile); err != nil {
			return fmt.Errorf("file mode failed: %w", err)
		}
	}

	log.Info("Running interactive mode")
	gameController.RunInteractive(ctx)

	return nil
}

// dial - establishes the transport selected by the configuration.
func dial(logger *slog.Logger, conf *config.Config) (transport.Transport, error) {
	switch conf.Transport {
	case config.TransportUnix:
		return transport.DialUnix(logger, conf.SocketPath)
	case config.TransportTCP:
		return transport.DialTCP(logger, conf.GetServerAddr())
	default:
		return nil, fmt.Errorf("unknown transport mode %q", conf.Transport)
	}
}
