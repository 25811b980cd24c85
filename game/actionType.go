package game

// ActionType represents the kind of atomic action a player can perform.
type ActionType int

const (
	PlaceAction ActionType = iota
	MoveAction
	RemoveAction
)

func (t ActionType) String() string {
	switch t {
	case PlaceAction:
		return "place"
	case MoveAction:
		return "move"
	case RemoveAction:
		return "remove"
	default:
		return "unknown"
	}
}
