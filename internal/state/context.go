package state

import "sync"

// State is the client position in the connection/game lifecycle.
type State int

const (
	Disconnected State = iota
	Connected
	Joined
	Playing
	GameOver
)

// String - returns the readable state name.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connected:
		return "CONNECTED"
	case Joined:
		return "JOINED"
	case Playing:
		return "PLAYING"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Player slot numbers. Slot 1 controls both colors in a single-player
// session, slot 2 controls one side of a two-party game.
const (
	SlotSinglePlayer = 1
	SlotTwoPlayer    = 2
)

// Context is the client-side finite state machine. One instance lives for
// the whole client process; the router is its only writer. Transitions that
// do not match their guard leave the state unchanged, so late or duplicated
// server notifications cannot corrupt it.
type Context struct {
	mu sync.RWMutex

	state        State
	playerColor  string
	playerNumber int
	sessionID    string
}

// NewContext - creates the state machine in DISCONNECTED.
func NewContext() *Context {
	return &Context{state: Disconnected}
}

// OnConnected - DISCONNECTED -> CONNECTED; stores the session id issued by
// the server.
func (that *Context) OnConnected(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Disconnected {
		return
	}

	that.state = Connected
	that.sessionID = sessionID
}

// OnJoined - CONNECTED -> JOINED, guarded by a matching session id.
func (that *Context) OnJoined(sessionID string, singlePlayer bool, color string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Connected || that.sessionID != sessionID {
		return
	}

	that.state = Joined

	if singlePlayer {
		that.playerColor = ""
		that.playerNumber = SlotSinglePlayer
		return
	}

	that.playerColor = color
	that.playerNumber = SlotTwoPlayer
}

// OnGameStarted - JOINED -> PLAYING.
func (that *Context) OnGameStarted() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Joined {
		return
	}

	that.state = Playing
}

// OnGameOver - PLAYING -> GAME_OVER.
func (that *Context) OnGameOver() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Playing {
		return
	}

	that.state = GameOver
}

// OnReset - JOINED/PLAYING/GAME_OVER -> CONNECTED; clears game-bound data
// while keeping the session id.
func (that *Context) OnReset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state != Joined && that.state != Playing && that.state != GameOver {
		return
	}

	that.state = Connected
	that.playerColor = ""
	that.playerNumber = 0
}

// OnDisconnected - any state -> DISCONNECTED; clears color and session id.
func (that *Context) OnDisconnected() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = Disconnected
	that.playerColor = ""
	that.playerNumber = 0
	that.sessionID = ""
}

// Current - returns the current state.
func (that *Context) Current() State {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.state
}

// PlayerColor - returns the assigned color, empty in single-player mode.
func (that *Context) PlayerColor() string {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.playerColor
}

// PlayerNumber - returns the player slot, zero before joining.
func (that *Context) PlayerNumber() int {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.playerNumber
}

// SessionID - returns the session id issued by the server.
func (that *Context) SessionID() string {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.sessionID
}

// CanJoin - true when a join command may be issued.
func (that *Context) CanJoin() bool {
	return that.Current() == Connected
}

// CanStart - true when a start command may be issued.
func (that *Context) CanStart() bool {
	return that.Current() == Joined
}

// CanMove - true when a move command may be issued.
func (that *Context) CanMove() bool {
	return that.Current() == Playing
}

// CanDisplayBoard - true when a board display may be requested.
func (that *Context) CanDisplayBoard() bool {
	current := that.Current()
	return current == Playing || current == GameOver
}

// CanEndGame - true when an end-game command may be issued.
func (that *Context) CanEndGame() bool {
	current := that.Current()
	return current == Playing || current == GameOver
}
