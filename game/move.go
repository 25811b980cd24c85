package game

import "fmt"

// Move is a single atomic action. From is only meaningful for MoveAction; To is the
// target cell of every action type.
type Move struct {
	Type ActionType
	From Point
	To   Point
}

// Place returns a placement on p.
func Place(p Point) Move {
	return Move{Type: PlaceAction, To: p}
}

// Slide returns a move from one tile to another, sliding or flying.
func Slide(from, to Point) Move {
	return Move{Type: MoveAction, From: from, To: to}
}

// Capture returns a removal of the piece on p.
func Capture(p Point) Move {
	return Move{Type: RemoveAction, To: p}
}

func (m Move) String() string {
	switch m.Type {
	case MoveAction:
		return fmt.Sprintf("%s (%d,%d)->(%d,%d)", m.Type, m.From.X, m.From.Y, m.To.X, m.To.Y)
	default:
		return fmt.Sprintf("%s (%d,%d)", m.Type, m.To.X, m.To.Y)
	}
}

// Turn is a full ply: a placement or move plus, when it closes a mill, the removal
// that follows it.
type Turn struct {
	Move    Move
	Removal *Move
}

func (t Turn) String() string {
	if t.Removal == nil {
		return t.Move.String()
	}
	return t.Move.String() + ", " + t.Removal.String()
}
