package game

import "errors"

// Errors returned by the state engine. They are always wrapped with the reason, so
// compare with errors.Is.
var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrOccupied         = errors.New("cell occupied")
	ErrPhase            = errors.New("wrong phase")
	ErrNotOwner         = errors.New("not the mover's piece")
	ErrNotOpponent      = errors.New("not an opponent piece")
	ErrIllegalAdjacency = errors.New("destination not adjacent")
	ErrMillProtected    = errors.New("piece protected by mill")
	ErrEmptyHistory     = errors.New("nothing to undo")
)
