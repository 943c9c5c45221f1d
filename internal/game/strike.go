package game

import "fmt"

// Strike is one validated move as reported by the server.
type Strike struct {
	StrikeNumber  int    `json:"strike_number"`
	Color         string `json:"color"`
	Piece         string `json:"piece"`
	CaseSrc       string `json:"case_src"`
	CaseDest      string `json:"case_dest"`
	IsCapture     bool   `json:"is_capture,omitempty"`
	CapturedColor string `json:"captured_color,omitempty"`
	CapturedPiece string `json:"captured_piece,omitempty"`
	IsCastling    bool   `json:"is_castling,omitempty"`
	CastlingType  string `json:"castling_type,omitempty"`
	IsCheck       bool   `json:"is_check,omitempty"`
	IsCheckmate   bool   `json:"is_checkmate,omitempty"`
	IsStalemate   bool   `json:"is_stalemate,omitempty"`
}

// Terminal - reports whether the strike ends the game.
func (that *Strike) Terminal() bool {
	return that.IsCheckmate || that.IsStalemate
}

// TerminalReason - returns the reason the strike ends the game, empty when
// it does not.
func (that *Strike) TerminalReason() string {
	switch {
	case that.IsCheckmate:
		return "Checkmate"
	case that.IsStalemate:
		return "Stalemate"
	default:
		return ""
	}
}

// BuildMoveDescription - builds the human-readable move description. The
// format is load-bearing: logs and fixtures are compared against it.
func BuildMoveDescription(strike *Strike) string {
	msg := fmt.Sprintf("%d. %s %s", strike.StrikeNumber, strike.Color, strike.Piece)

	switch {
	case strike.IsCastling:
		msg += fmt.Sprintf(" does a %s castling from %s to %s", strike.CastlingType, strike.CaseSrc, strike.CaseDest)
	case strike.IsCapture:
		msg += fmt.Sprintf(" on %s takes %s %s on %s", strike.CaseSrc, strike.CapturedColor, strike.CapturedPiece, strike.CaseDest)
	default:
		msg += fmt.Sprintf(" moves from %s to %s", strike.CaseSrc, strike.CaseDest)
	}

	return msg
}

// BuildStrikeSuffix - builds the terminal suffix for a move description,
// checkmate taking precedence over check, check over stalemate.
func BuildStrikeSuffix(strike *Strike) string {
	switch {
	case strike.IsCheckmate:
		return ". Checkmate"
	case strike.IsCheck:
		return ". Check"
	case strike.IsStalemate:
		return ". Stalemate"
	default:
		return ""
	}
}
