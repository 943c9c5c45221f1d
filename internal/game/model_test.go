package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_StartGame(t *testing.T) {
	model := NewModel()

	// When: a game starts
	model.StartGame()

	// Then: move 1 with white (the first mover) to play
	require.Equal(t, 1, model.MoveCount())
	require.Equal(t, ColorWhite, model.CurrentTurn())
}

func TestModel_UpdateTurnParity(t *testing.T) {
	model := NewModel()
	model.StartGame()

	// Then: odd strike numbers belong to white, even ones to black
	for _, tc := range []struct {
		strikeNumber int
		expectedTurn string
	}{
		{1, ColorWhite},
		{2, ColorBlack},
		{3, ColorWhite},
		{4, ColorBlack},
		{17, ColorWhite},
	} {
		model.UpdateTurn(tc.strikeNumber)

		assert.Equal(t, tc.strikeNumber, model.MoveCount())
		assert.Equalf(t, tc.expectedTurn, model.CurrentTurn(), "strike number %d", tc.strikeNumber)
	}
}

func TestModel_PlayerJoinedFlags(t *testing.T) {
	model := NewModel()

	// When: only white has joined
	model.SetPlayerJoined(ColorWhite)

	// Then: the table is not yet full
	assert.True(t, model.WhiteJoined())
	assert.False(t, model.BlackJoined())
	assert.False(t, model.BothPlayersJoined())

	// When: black joins too
	model.SetPlayerJoined(ColorBlack)

	// Then: both seats are taken
	assert.True(t, model.BothPlayersJoined())
}

func TestModel_IgnoresUnknownColor(t *testing.T) {
	model := NewModel()

	model.SetPlayerJoined("purple")

	assert.False(t, model.WhiteJoined())
	assert.False(t, model.BlackJoined())
}

func TestModel_Reset(t *testing.T) {
	// Given: a snapshot mid-game
	model := NewModel()
	model.SetPlayerJoined(ColorWhite)
	model.SetPlayerJoined(ColorBlack)
	model.StartGame()
	model.UpdateTurn(7)

	// When: the snapshot is reset
	model.Reset()

	// Then: it is cleared wholesale
	assert.Zero(t, model.MoveCount())
	assert.Empty(t, model.CurrentTurn())
	assert.False(t, model.WhiteJoined())
	assert.False(t, model.BlackJoined())
}
