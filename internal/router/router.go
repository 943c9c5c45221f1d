package router

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/chess-client/internal/game"
	"github.com/rocketscienceinc/chess-client/internal/protocol"
	"github.com/rocketscienceinc/chess-client/internal/state"
	"github.com/rocketscienceinc/chess-client/internal/view"
)

// Router maps decoded server events onto state machine transitions, game
// model updates and view calls. It is the single writer of both the state
// machine and the model; handlers are short, synchronous and never block.
type Router struct {
	logger *slog.Logger
	state  *state.Context
	model  *game.Model
	view   view.View

	// refreshMenu re-renders the menu after events that change what the
	// user can do next; nil disables refreshes (tests, file mode).
	refreshMenu func()

	handlers map[string]func(event *protocol.Event)
}

// New - creates a router over the shared state machine, game model and
// view.
func New(logger *slog.Logger, st *state.Context, model *game.Model, v view.View, refreshMenu func()) *Router {
	router := &Router{
		logger:      logger.With("component", "router"),
		state:       st,
		model:       model,
		view:        v,
		refreshMenu: refreshMenu,
	}

	router.handlers = map[string]func(event *protocol.Event){
		protocol.EventSessionCreated: router.handleSessionCreated,
		protocol.EventJoinSuccess:    router.handleJoinSuccess,
		protocol.EventPlayerJoined:   router.handlePlayerJoined,
		protocol.EventGameReady:      router.handleGameReady,
		protocol.EventGameStarted:    router.handleGameStarted,
		protocol.EventMoveResult:     router.handleMoveResult,
		protocol.EventBoardDisplay:   router.handleBoardDisplay,
		protocol.EventGameOver:       router.handleGameOver,
		protocol.EventGameReset:      router.handleGameReset,
		protocol.EventError:          router.handleError,
	}

	return router
}

// Route - decodes one complete message and dispatches it by its type
// discriminant. Malformed JSON and unknown types are logged and skipped so
// the receive loop always survives them.
func (that *Router) Route(raw string) {
	log := that.logger.With("method", "Route")

	var event protocol.Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		log.Error("invalid JSON from server", "error", err, "raw", raw)
		return
	}

	handler, ok := that.handlers[event.Type]
	if !ok {
		log.Warn("unknown message type", "type", event.Type)
		return
	}

	log.Debug("routing message", "type", event.Type)
	handler(&event)
}

// handleSessionCreated - DISCONNECTED -> CONNECTED, surfaces the session id.
func (that *Router) handleSessionCreated(event *protocol.Event) {
	that.state.OnConnected(event.SessionID)
	that.view.DisplayInfo(fmt.Sprintf("Connected with session: %s", event.SessionID))
}

// handleJoinSuccess - CONNECTED -> JOINED, seats the player.
func (that *Router) handleJoinSuccess(event *protocol.Event) {
	that.state.OnJoined(event.SessionID, event.SinglePlayer, event.Color)

	if event.SinglePlayer {
		// Single player takes both seats.
		that.model.SetPlayerJoined(game.ColorWhite)
		that.model.SetPlayerJoined(game.ColorBlack)
		that.view.DisplaySuccess("Joined as white and black")
	} else {
		that.model.SetPlayerJoined(event.Color)
		that.view.DisplaySuccess(fmt.Sprintf("Joined as %s", event.Color))
	}

	if event.Status != "" {
		that.view.DisplayInfo(event.Status)
	}
}

// handlePlayerJoined - the other seat was taken.
func (that *Router) handlePlayerJoined(event *protocol.Event) {
	that.model.SetPlayerJoined(event.Color)

	that.view.DisplayInfo(fmt.Sprintf(">>> Another player joined as %s <<<", event.Color))
	if event.Status != "" {
		that.view.DisplayInfo(fmt.Sprintf(">>> %s <<<", event.Status))
	}

	if that.model.BothPlayersJoined() {
		that.view.DisplayInfo(">>> Both players ready! <<<")
	}

	that.showMenu()
}

// handleGameReady - both seats confirmed by the server.
func (that *Router) handleGameReady(event *protocol.Event) {
	if protocol.HasValue(event.WhitePlayer) {
		that.model.SetPlayerJoined(game.ColorWhite)
	}
	if protocol.HasValue(event.BlackPlayer) {
		that.model.SetPlayerJoined(game.ColorBlack)
	}

	status := event.Status
	if status == "" {
		status = "Both players joined!"
	}

	that.view.DisplayInfo(fmt.Sprintf(">>> %s <<<", status))

	that.showMenu()
}

// handleGameStarted - JOINED -> PLAYING, resets the snapshot to move 1 with
// white to play.
func (that *Router) handleGameStarted(event *protocol.Event) {
	that.state.OnGameStarted()
	that.model.StartGame()

	message := "2-player game started!"
	if that.state.PlayerNumber() == state.SlotSinglePlayer {
		message = "1-player game started!"
	}
	that.view.DisplaySuccess(message)

	if event.Board != nil && event.Board.FEN != "" {
		that.view.DisplayBoard(event.Board.FEN)
	}

	that.showMenu()
}

// handleMoveResult - describes the accepted move, updates the turn from the
// server-supplied strike number and detects the end of the game.
func (that *Router) handleMoveResult(event *protocol.Event) {
	if event.Strike == nil {
		that.logger.Warn("move result without strike payload")
		return
	}

	description := game.BuildMoveDescription(event.Strike) + game.BuildStrikeSuffix(event.Strike)
	that.view.DisplayInfo(description)

	that.model.UpdateTurn(event.Strike.StrikeNumber)

	if event.Strike.Terminal() {
		that.state.OnGameOver()
		that.view.DisplayGameOver(event.Strike.TerminalReason())
	}
}

// handleBoardDisplay - forwards the board snapshot verbatim.
func (that *Router) handleBoardDisplay(event *protocol.Event) {
	board := event.Data.BoardText()
	if board == "" {
		that.view.DisplayError("No board data received")
		return
	}

	that.view.DisplayBoard(board)
}

// handleGameOver - PLAYING -> GAME_OVER, forwards the result.
func (that *Router) handleGameOver(event *protocol.Event) {
	result := event.Result
	if result == "" {
		result = "Unknown"
	}

	that.state.OnGameOver()
	that.view.DisplayGameOver(result)

	that.showMenu()
}

// handleGameReset - back to CONNECTED, clears the snapshot and releases any
// rendering resources.
func (that *Router) handleGameReset(_ *protocol.Event) {
	that.state.OnReset()
	that.model.Reset()

	that.view.DisplayInfo("Game has been reset")
	that.view.Cleanup()

	that.showMenu()
}

// handleError - forwards a server-reported error; never touches the state
// machine.
func (that *Router) handleError(event *protocol.Event) {
	message := event.Error
	if message == "" {
		message = "Unknown error"
	}

	that.view.DisplayError(message)

	if event.Expected != "" {
		that.view.DisplayInfo(fmt.Sprintf("Expected format: %s", event.Expected))
	}
}

func (that *Router) showMenu() {
	if that.refreshMenu != nil {
		that.refreshMenu()
	}
}
