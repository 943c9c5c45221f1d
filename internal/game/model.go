package game

import "sync"

// Player colors. White always moves first.
const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// Model is the client-side game data snapshot: move counter, whose turn it
// is and which colors have a player. The router is the only writer; the
// presentation layer reads through the accessors.
type Model struct {
	mu sync.RWMutex

	moveCount   int
	currentTurn string
	whiteJoined bool
	blackJoined bool
}

// NewModel - creates an empty game snapshot.
func NewModel() *Model {
	return &Model{}
}

// SetPlayerJoined - marks a color as taken. Unknown colors are ignored.
func (that *Model) SetPlayerJoined(color string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch color {
	case ColorWhite:
		that.whiteJoined = true
	case ColorBlack:
		that.blackJoined = true
	}
}

// WhiteJoined - reports whether the white seat is taken.
func (that *Model) WhiteJoined() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.whiteJoined
}

// BlackJoined - reports whether the black seat is taken.
func (that *Model) BlackJoined() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.blackJoined
}

// BothPlayersJoined - reports whether both seats are taken.
func (that *Model) BothPlayersJoined() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.whiteJoined && that.blackJoined
}

// StartGame - initializes the snapshot for a fresh game: move 1, white to
// play.
func (that *Model) StartGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moveCount = 1
	that.currentTurn = ColorWhite
}

// UpdateTurn - stores the server-supplied strike number and derives the
// turn from its parity: odd numbers are white's, even numbers black's.
func (that *Model) UpdateTurn(strikeNumber int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moveCount = strikeNumber

	if strikeNumber%2 == 1 {
		that.currentTurn = ColorWhite
	} else {
		that.currentTurn = ColorBlack
	}
}

// MoveCount - returns the last accepted strike number.
func (that *Model) MoveCount() int {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.moveCount
}

// CurrentTurn - returns the color to play, empty before the game starts.
func (that *Model) CurrentTurn() string {
	that.mu.RLock()
	defer that.mu.RUnlock()
	return that.currentTurn
}

// Reset - clears the snapshot wholesale.
func (that *Model) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moveCount = 0
	that.currentTurn = ""
	that.whiteJoined = false
	that.blackJoined = false
}
