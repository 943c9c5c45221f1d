package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/chess-client/internal/apperror"
	"github.com/rocketscienceinc/chess-client/internal/game"
	"github.com/rocketscienceinc/chess-client/internal/protocol"
	"github.com/rocketscienceinc/chess-client/internal/state"
	"github.com/rocketscienceinc/chess-client/internal/view"
)

// pollInterval paces the interactive loop while server replies land on the
// receive goroutine.
const pollInterval = 100 * time.Millisecond

// sender is the outbound half of the session the controller needs.
type sender interface {
	Send(message any) error
	Active() bool
}

// GameController translates user intentions into outbound commands, each
// gated by the state machine guard for it. Refused commands surface a
// user-visible error and produce no outbound message.
type GameController struct {
	logger  *slog.Logger
	state   *state.Context
	model   *game.Model
	view    view.View
	session sender

	uploadChunkSize int
}

// New - creates a controller; the session is attached later with
// SetSession once the receive pipeline is wired.
func New(logger *slog.Logger, st *state.Context, model *game.Model, v view.View, uploadChunkSize int) *GameController {
	return &GameController{
		logger:          logger.With("component", "controller"),
		state:           st,
		model:           model,
		view:            v,
		uploadChunkSize: uploadChunkSize,
	}
}

// SetSession - attaches the session used for sending commands.
func (that *GameController) SetSession(s sender) {
	that.session = s
}

// ShowMenu - renders the state-aware menu.
func (that *GameController) ShowMenu() {
	that.view.DisplayMenu(that.menuInfo())
}

// menuInfo - assembles the snapshot the view renders from.
func (that *GameController) menuInfo() view.MenuInfo {
	return view.MenuInfo{
		StateName:    that.state.Current().String(),
		PlayerColor:  that.state.PlayerColor(),
		PlayerNumber: that.state.PlayerNumber(),
		SessionID:    that.state.SessionID(),
		CurrentTurn:  that.model.CurrentTurn(),
		WhiteJoined:  that.model.WhiteJoined(),
		BlackJoined:  that.model.BlackJoined(),
		MoveCount:    that.model.MoveCount(),
	}
}

// SendJoin - issues a join_game command for one color.
func (that *GameController) SendJoin(color string) error {
	if !that.state.CanJoin() {
		that.view.DisplayError("Cannot join in current state")
		return apperror.ErrCannotJoin
	}

	if err := that.session.Send(protocol.NewJoinGame(color, false)); err != nil {
		return fmt.Errorf("failed to send join command: %w", err)
	}

	that.logger.Info("sent join command", "color", color)

	return nil
}

// SendSinglePlayerJoin - claims both seats for this session.
func (that *GameController) SendSinglePlayerJoin() error {
	if !that.state.CanJoin() {
		that.view.DisplayError("Cannot join in current state")
		return apperror.ErrCannotJoin
	}

	for _, color := range []string{game.ColorWhite, game.ColorBlack} {
		if err := that.session.Send(protocol.NewJoinGame(color, true)); err != nil {
			return fmt.Errorf("failed to send join command: %w", err)
		}
	}

	that.view.DisplayInfo("Single-player mode: You control both sides")
	that.logger.Info("sent single-player join commands")

	return nil
}

// SendStart - issues a start_game command once both players are seated.
func (that *GameController) SendStart() error {
	if !that.state.CanStart() {
		that.view.DisplayError("Cannot start - not in JOINED state")
		return apperror.ErrCannotStart
	}

	if !that.model.BothPlayersJoined() {
		that.view.DisplayWarning("Cannot start - waiting for both players")
		return apperror.ErrPlayersNotReady
	}

	if err := that.session.Send(protocol.NewStartGame()); err != nil {
		return fmt.Errorf("failed to send start command: %w", err)
	}

	that.logger.Info("sent start command")

	return nil
}

// SendMove - issues a make_move command.
func (that *GameController) SendMove(from, to string) error {
	if !that.state.CanMove() {
		that.view.DisplayError("Cannot move in current state")
		return apperror.ErrCannotMove
	}

	if err := that.session.Send(protocol.NewMakeMove(from, to)); err != nil {
		return fmt.Errorf("failed to send move command: %w", err)
	}

	that.logger.Info("sent move command", "from", from, "to", to)

	return nil
}

// SendDisplayBoard - requests a board snapshot.
func (that *GameController) SendDisplayBoard() error {
	if !that.state.CanDisplayBoard() {
		that.view.DisplayError("Cannot display board in current state")
		return apperror.ErrCannotDisplayBoard
	}

	if err := that.session.Send(protocol.NewDisplayBoard()); err != nil {
		return fmt.Errorf("failed to send display command: %w", err)
	}

	that.logger.Info("sent display board command")

	return nil
}

// SendEndGame - asks the server to end the current game.
func (that *GameController) SendEndGame() error {
	if !that.state.CanEndGame() {
		that.view.DisplayError("Cannot end game in current state")
		return apperror.ErrCannotEndGame
	}

	if err := that.session.Send(protocol.NewEndGame()); err != nil {
		return fmt.Errorf("failed to send end command: %w", err)
	}

	that.logger.Info("sent end game command")

	return nil
}

// RunInteractive - drives the menu loop until the user quits, the context
// is canceled or the session goes down.
func (that *GameController) RunInteractive(ctx context.Context) {
	log := that.logger.With("method", "RunInteractive")

	if !that.waitForConnection(ctx) {
		return
	}

	log.Info("starting interactive mode")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !that.session.Active() {
			that.view.DisplayError("server closed connection")
			return
		}

		that.ShowMenu()

		command, err := that.view.WaitForInput(that.menuInfo())
		if err != nil {
			log.Debug("input closed", "error", err)
			return
		}

		if command.Action == view.ActionQuit {
			if that.view.ConfirmAction("Are you sure you want to quit?") {
				return
			}
			continue
		}

		that.handleCommand(command)

		// Give the receive goroutine a beat to route the reply before the
		// menu is redrawn.
		time.Sleep(pollInterval)
	}
}

// handleCommand - executes one user command; guard violations have already
// been surfaced through the view by the Send helpers.
func (that *GameController) handleCommand(command view.Command) {
	switch command.Action {
	case view.ActionSingle:
		_ = that.SendSinglePlayerJoin()

	case view.ActionJoin:
		if len(command.Args) == 1 {
			_ = that.SendJoin(command.Args[0])
			return
		}
		that.view.DisplayError("Invalid choice")

	case view.ActionStart:
		_ = that.SendStart()

	case view.ActionMove:
		if len(command.Args) == 2 {
			_ = that.SendMove(command.Args[0], command.Args[1])
			return
		}
		that.view.DisplayError("Invalid move format")

	case view.ActionDisplay:
		_ = that.SendDisplayBoard()

	case view.ActionEnd:
		if that.view.ConfirmAction("End the game?") {
			_ = that.SendEndGame()
		}

	case view.ActionUpload:
		if len(command.Args) == 1 {
			if err := that.UploadGameFile(command.Args[0]); err != nil {
				that.view.DisplayError(fmt.Sprintf("Upload failed: %v", err))
			}
			return
		}
		that.view.DisplayError("Invalid choice")

	default:
		that.view.DisplayError("Invalid choice")
	}
}

// waitForConnection - blocks until the server issues a session or the
// context is canceled.
func (that *GameController) waitForConnection(ctx context.Context) bool {
	for that.state.Current() == state.Disconnected {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(pollInterval):
		}

		if !that.session.Active() {
			that.view.DisplayError("server closed connection")
			return false
		}
	}

	return true
}
