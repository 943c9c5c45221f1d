package apperror

import "errors"

var (
	ErrSessionNotActive   = errors.New("session is not active")
	ErrTransportClosed    = errors.New("transport is closed")
	ErrCannotJoin         = errors.New("cannot join game in current state")
	ErrCannotStart        = errors.New("cannot start game before joining")
	ErrCannotMove         = errors.New("cannot move before the game starts")
	ErrCannotDisplayBoard = errors.New("cannot display board in current state")
	ErrCannotEndGame      = errors.New("cannot end game in current state")
	ErrPlayersNotReady    = errors.New("waiting for both players to join")
)
