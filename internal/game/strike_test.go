package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMoveDescription_PlainMove(t *testing.T) {
	strike := &Strike{
		StrikeNumber: 1,
		Color:        "white",
		Piece:        "pawn",
		CaseSrc:      "e2",
		CaseDest:     "e4",
	}

	require.Equal(t, "1. white pawn moves from e2 to e4", BuildMoveDescription(strike))
}

func TestBuildMoveDescription_Capture(t *testing.T) {
	strike := &Strike{
		StrikeNumber:  3,
		Color:         "white",
		Piece:         "knight",
		CaseSrc:       "f3",
		CaseDest:      "h4",
		IsCapture:     true,
		CapturedColor: "black",
		CapturedPiece: "queen",
	}

	require.Equal(t, "3. white knight on f3 takes black queen on h4", BuildMoveDescription(strike))
}

func TestBuildMoveDescription_Castling(t *testing.T) {
	strike := &Strike{
		StrikeNumber: 5,
		Color:        "white",
		Piece:        "king",
		CaseSrc:      "e1",
		CaseDest:     "g1",
		IsCastling:   true,
		CastlingType: "little",
	}

	require.Equal(t, "5. white king does a little castling from e1 to g1", BuildMoveDescription(strike))
}

func TestBuildMoveDescription_CastlingWinsOverCapture(t *testing.T) {
	// Given: a strike with both flags raised
	strike := &Strike{
		StrikeNumber: 8,
		Color:        "black",
		Piece:        "king",
		CaseSrc:      "e8",
		CaseDest:     "c8",
		IsCastling:   true,
		CastlingType: "big",
		IsCapture:    true,
	}

	// Then: the castling form takes precedence
	require.Equal(t, "8. black king does a big castling from e8 to c8", BuildMoveDescription(strike))
}

func TestBuildStrikeSuffix(t *testing.T) {
	t.Run("no terminal flags", func(t *testing.T) {
		assert.Empty(t, BuildStrikeSuffix(&Strike{}))
	})

	t.Run("check", func(t *testing.T) {
		assert.Equal(t, ". Check", BuildStrikeSuffix(&Strike{IsCheck: true}))
	})

	t.Run("stalemate", func(t *testing.T) {
		assert.Equal(t, ". Stalemate", BuildStrikeSuffix(&Strike{IsStalemate: true}))
	})

	t.Run("checkmate beats check and stalemate", func(t *testing.T) {
		strike := &Strike{IsCheckmate: true, IsCheck: true, IsStalemate: true}
		assert.Equal(t, ". Checkmate", BuildStrikeSuffix(strike))
	})

	t.Run("check beats stalemate", func(t *testing.T) {
		strike := &Strike{IsCheck: true, IsStalemate: true}
		assert.Equal(t, ". Check", BuildStrikeSuffix(strike))
	})
}

func TestStrike_Terminal(t *testing.T) {
	assert.False(t, (&Strike{IsCheck: true}).Terminal())
	assert.True(t, (&Strike{IsCheckmate: true}).Terminal())
	assert.True(t, (&Strike{IsStalemate: true}).Terminal())

	assert.Equal(t, "Checkmate", (&Strike{IsCheckmate: true}).TerminalReason())
	assert.Equal(t, "Stalemate", (&Strike{IsStalemate: true}).TerminalReason())
	assert.Empty(t, (&Strike{}).TerminalReason())
}
