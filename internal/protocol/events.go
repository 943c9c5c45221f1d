package protocol

import (
	"encoding/json"

	"github.com/rocketscienceinc/chess-client/internal/game"
)

// Inbound event discriminants. The set is closed on the client side; an
// unrecognized type is logged and ignored for forward compatibility.
const (
	EventSessionCreated = "session_created"
	EventJoinSuccess    = "join_success"
	EventPlayerJoined   = "player_joined"
	EventGameReady      = "game_ready"
	EventGameStarted    = "game_started"
	EventMoveResult     = "move_result"
	EventBoardDisplay   = "board_display"
	EventGameOver       = "game_over"
	EventGameReset      = "game_reset"
	EventError          = "error"
)

// Event is the envelope for every server message: the type discriminant
// plus the union of type-specific payload fields, decoded once.
type Event struct {
	Type         string          `json:"type"`
	SessionID    string          `json:"session_id,omitempty"`
	Color        string          `json:"color,omitempty"`
	SinglePlayer bool            `json:"single_player,omitempty"`
	Status       string          `json:"status,omitempty"`
	WhitePlayer  json.RawMessage `json:"white_player,omitempty"`
	BlackPlayer  json.RawMessage `json:"black_player,omitempty"`
	Board        *Board          `json:"board,omitempty"`
	Data         *BoardData      `json:"data,omitempty"`
	Strike       *game.Strike    `json:"strike,omitempty"`
	Timestamp    int64           `json:"timestamp,omitempty"`
	Result       string          `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
	Expected     string          `json:"expected,omitempty"`
}

// Board is the board payload attached to game_started and move_result.
type Board struct {
	FEN string `json:"fen,omitempty"`
}

// BoardData wraps the board snapshot of a board_display event. The board is
// kept raw and forwarded verbatim to the view.
type BoardData struct {
	Board json.RawMessage `json:"board,omitempty"`
}

// BoardText - returns the board snapshot as display text: a JSON string is
// unquoted, anything else is passed through verbatim.
func (that *BoardData) BoardText() string {
	if that == nil || len(that.Board) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(that.Board, &text); err == nil {
		return text
	}

	return string(that.Board)
}

// HasValue - reports whether a raw payload field is present and not null.
func HasValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null" && string(raw) != "false"
}
