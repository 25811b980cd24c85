package game

// Piece is the content of a board cell. White and Black double as player identifiers.
type Piece int

const (
	Empty Piece = iota
	White
	Black
)

func (p Piece) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// Opponent returns the other player. Empty has no opponent.
func Opponent(p Piece) Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

const (
	PiecesPerPlayer = 9
	TotalPieces     = 2 * PiecesPerPlayer
	FlyingPieces    = 3 // a player with exactly this many pieces may fly
)

type StateHash uint64

// Evaluator scores a state: positive favours White, negative favours Black.
type Evaluator func(*GameState) int
