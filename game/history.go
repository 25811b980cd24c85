package game

// Entry is one action in a game's history. The concrete types are PlaceEntry,
// MoveEntry and RemoveEntry.
type Entry interface {
	entry()
	Actor() Piece
}

// PlaceEntry records a placement.
type PlaceEntry struct {
	At     Point
	Player Piece
	Mill   bool
}

// MoveEntry records a slide or flight.
type MoveEntry struct {
	From   Point
	To     Point
	Player Piece
	Mill   bool
}

// RemoveEntry records the removal of an opponent piece. Player is the remover.
type RemoveEntry struct {
	At     Point
	Player Piece
}

func (PlaceEntry) entry()  {}
func (MoveEntry) entry()   {}
func (RemoveEntry) entry() {}

func (e PlaceEntry) Actor() Piece  { return e.Player }
func (e MoveEntry) Actor() Piece   { return e.Player }
func (e RemoveEntry) Actor() Piece { return e.Player }

// formedMill reports whether the entry closed a mill.
func formedMill(e Entry) bool {
	switch e := e.(type) {
	case PlaceEntry:
		return e.Mill
	case MoveEntry:
		return e.Mill
	default:
		return false
	}
}
