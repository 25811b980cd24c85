package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type Phase int

const (
	PlacementPhase Phase = iota
	MovingPhase
	FlyingPhase
)

func (p Phase) String() string {
	switch p {
	case PlacementPhase:
		return "placement"
	case MovingPhase:
		return "moving"
	default:
		return "flying"
	}
}

// GameState represents the dynamic state of a game. The board graph is static and
// shared, see Graph.
type GameState struct {
	Board         [Size][Size]Piece // Cell contents indexed [y][x]
	Placed        int               // Pieces placed so far by both players
	OnBoard       [3]int            // Pieces on the board, indexed by Piece
	Removed       [3]int            // Pieces lost to mills, indexed by Piece
	CurrentPlayer Piece             // The player to act
	History       []Entry           // Actions in the order they were played
}

// NewGameState returns an empty board with White to move.
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Start()
	return gs
}

// Start resets the state to a fresh game.
func (gs *GameState) Start() {
	*gs = GameState{CurrentPlayer: White}
}

// Copy returns a state that shares nothing mutable with gs.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.History = make([]Entry, len(gs.History), len(gs.History)+8)
	copy(c.History, gs.History)
	return &c
}

func (gs *GameState) switchPlayer() {
	gs.CurrentPlayer = Opponent(gs.CurrentPlayer)
}

// PieceAt returns the content of p. Off-board points are always Empty.
func (gs *GameState) PieceAt(p Point) Piece {
	if !IsTile(p) {
		return Empty
	}
	return gs.Board[p.Y][p.X]
}

// InPlacement reports whether pieces are still being placed.
func (gs *GameState) InPlacement() bool {
	return gs.Placed < TotalPieces
}

// Phase returns the phase of the player to move.
func (gs *GameState) Phase() Phase {
	if gs.InPlacement() {
		return PlacementPhase
	}
	if gs.OnBoard[gs.CurrentPlayer] == FlyingPieces {
		return FlyingPhase
	}
	return MovingPhase
}

// InHand returns how many pieces player has yet to place.
func (gs *GameState) InHand(player Piece) int {
	return PiecesPerPlayer - gs.OnBoard[player] - gs.Removed[player]
}

// Place puts a piece of the current player on p. It reports whether the placement
// closed a mill, in which case the same player must remove an opponent piece next.
func (gs *GameState) Place(p Point) (bool, error) {
	if !IsTile(p) {
		return false, fmt.Errorf("%w: (%d,%d) is not on the board", ErrInvalidPosition, p.X, p.Y)
	}
	if !gs.InPlacement() {
		return false, fmt.Errorf("%w: all %d pieces have been placed", ErrPhase, TotalPieces)
	}
	player := gs.CurrentPlayer
	if gs.InHand(player) <= 0 {
		return false, fmt.Errorf("%w: %s has no pieces left to place", ErrPhase, player)
	}
	if gs.Board[p.Y][p.X] != Empty {
		return false, fmt.Errorf("%w: (%d,%d) holds %s", ErrOccupied, p.X, p.Y, gs.Board[p.Y][p.X])
	}

	gs.Board[p.Y][p.X] = player
	gs.Placed++
	gs.OnBoard[player]++

	mill := gs.InMill(p)
	gs.History = append(gs.History, PlaceEntry{At: p, Player: player, Mill: mill})
	if !mill {
		gs.switchPlayer()
	}
	return mill, nil
}

// Move slides (or, with exactly three pieces left, flies) a piece of the current
// player. It reports whether the move closed a mill.
func (gs *GameState) Move(from, to Point) (bool, error) {
	if gs.InPlacement() {
		return false, fmt.Errorf("%w: %d of %d pieces placed", ErrPhase, gs.Placed, TotalPieces)
	}
	if !IsTile(from) {
		return false, fmt.Errorf("%w: (%d,%d) is not on the board", ErrInvalidPosition, from.X, from.Y)
	}
	if !IsTile(to) {
		return false, fmt.Errorf("%w: (%d,%d) is not on the board", ErrInvalidPosition, to.X, to.Y)
	}
	player := gs.CurrentPlayer
	if gs.Board[from.Y][from.X] != player {
		return false, fmt.Errorf("%w: (%d,%d) does not hold a %s piece", ErrNotOwner, from.X, from.Y, player)
	}
	if gs.Board[to.Y][to.X] != Empty {
		return false, fmt.Errorf("%w: (%d,%d) holds %s", ErrOccupied, to.X, to.Y, gs.Board[to.Y][to.X])
	}
	if gs.OnBoard[player] != FlyingPieces && !AreAdjacent(from, to) {
		return false, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrIllegalAdjacency, from.X, from.Y, to.X, to.Y)
	}

	gs.Board[from.Y][from.X] = Empty
	gs.Board[to.Y][to.X] = player

	mill := gs.InMill(to)
	gs.History = append(gs.History, MoveEntry{From: from, To: to, Player: player, Mill: mill})
	if !mill {
		gs.switchPlayer()
	}
	return mill, nil
}

// Remove takes an opponent piece off p and passes the turn. A piece inside a mill
// can only be taken when every opponent piece is inside one.
func (gs *GameState) Remove(p Point) error {
	if !IsTile(p) {
		return fmt.Errorf("%w: (%d,%d) is not on the board", ErrInvalidPosition, p.X, p.Y)
	}
	opponent := Opponent(gs.CurrentPlayer)
	if gs.Board[p.Y][p.X] != opponent {
		return fmt.Errorf("%w: (%d,%d) does not hold a %s piece", ErrNotOpponent, p.X, p.Y, opponent)
	}
	if gs.InMill(p) && gs.hasUnmilled(opponent) {
		return fmt.Errorf("%w: (%d,%d) while %s has pieces outside mills", ErrMillProtected, p.X, p.Y, opponent)
	}

	gs.Board[p.Y][p.X] = Empty
	gs.OnBoard[opponent]--
	gs.Removed[opponent]++
	gs.History = append(gs.History, RemoveEntry{At: p, Player: gs.CurrentPlayer})
	gs.switchPlayer()
	return nil
}

// Undo reverts the most recent action and gives the turn back to whoever played it.
func (gs *GameState) Undo() error {
	n := len(gs.History)
	if n == 0 {
		return fmt.Errorf("%w: history is empty", ErrEmptyHistory)
	}
	last := gs.History[n-1]
	gs.History = gs.History[:n-1]

	switch e := last.(type) {
	case PlaceEntry:
		gs.Board[e.At.Y][e.At.X] = Empty
		gs.Placed--
		gs.OnBoard[e.Player]--
	case MoveEntry:
		gs.Board[e.To.Y][e.To.X] = Empty
		gs.Board[e.From.Y][e.From.X] = e.Player
	case RemoveEntry:
		victim := Opponent(e.Player)
		gs.Board[e.At.Y][e.At.X] = victim
		gs.Removed[victim]--
		gs.OnBoard[victim]++
	default:
		panic(fmt.Sprintf("unexpected history entry %T", last))
	}
	gs.CurrentPlayer = last.Actor()
	return nil
}

// Play applies a move of any type. It is the single entry point used by search and
// agents.
func (gs *GameState) Play(m Move) (bool, error) {
	switch m.Type {
	case PlaceAction:
		return gs.Place(m.To)
	case MoveAction:
		return gs.Move(m.From, m.To)
	case RemoveAction:
		return false, gs.Remove(m.To)
	default:
		return false, fmt.Errorf("unknown action type %d", m.Type)
	}
}

// PlayTurn applies a move and its follow-up removal. While a removal is owed the
// turn must be that removal alone. On error the state is rolled back to where it
// was before the call.
func (gs *GameState) PlayTurn(t Turn) error {
	owed := gs.RemovalOwed()
	if owed != (t.Move.Type == RemoveAction) || (owed && t.Removal != nil) {
		if owed {
			return fmt.Errorf("%w: %s owes a removal, got %s", ErrPhase, gs.CurrentPlayer, t)
		}
		return fmt.Errorf("%w: %s without a mill", ErrPhase, t)
	}

	mill, err := gs.Play(t.Move)
	if err != nil {
		return err
	}
	if t.Removal == nil {
		return nil
	}
	if !mill {
		gs.Undo()
		return fmt.Errorf("%w: %s does not close a mill", ErrPhase, t.Move)
	}
	if _, err := gs.Play(*t.Removal); err != nil {
		gs.Undo()
		return err
	}
	return nil
}

// UndoTurn reverts a turn previously applied with PlayTurn.
func (gs *GameState) UndoTurn(t Turn) {
	if t.Removal != nil {
		gs.Undo()
	}
	gs.Undo()
}

// InMill reports whether the piece on p is part of a formed mill.
func (gs *GameState) InMill(p Point) bool {
	owner := gs.PieceAt(p)
	if owner == Empty {
		return false
	}
	for _, i := range millsThrough(p) {
		if gs.lineCount(Mills[i], owner) == 3 {
			return true
		}
	}
	return false
}

// WouldFormMill reports whether the current player would close a mill by playing m.
func (gs *GameState) WouldFormMill(m Move) bool {
	if m.Type == RemoveAction || !IsTile(m.To) {
		return false
	}
	player := gs.CurrentPlayer
	for _, i := range millsThrough(m.To) {
		closes := true
		for _, p := range Mills[i] {
			if p == m.To {
				continue
			}
			if gs.Board[p.Y][p.X] != player || (m.Type == MoveAction && p == m.From) {
				closes = false
				break
			}
		}
		if closes {
			return true
		}
	}
	return false
}

// MillPending reports whether the last action closed a mill that has not yet been
// followed by a removal.
func (gs *GameState) MillPending() bool {
	n := len(gs.History)
	return n > 0 && formedMill(gs.History[n-1])
}

// RemovalOwed reports whether the current player must remove an opponent piece
// before anything else: a mill is pending and the opponent has a piece to take.
func (gs *GameState) RemovalOwed() bool {
	return gs.MillPending() && gs.OnBoard[Opponent(gs.CurrentPlayer)] > 0
}

func (gs *GameState) hasUnmilled(player Piece) bool {
	for _, p := range Tiles {
		if gs.Board[p.Y][p.X] == player && !gs.InMill(p) {
			return true
		}
	}
	return false
}

func (gs *GameState) lineCount(line Mill, piece Piece) int {
	n := 0
	for _, p := range line {
		if gs.Board[p.Y][p.X] == piece {
			n++
		}
	}
	return n
}

// IsTerminal reports whether the game is decided and, if so, who won. Games are
// never decided during placement.
func (gs *GameState) IsTerminal() (bool, Piece) {
	if gs.Placed == 0 || gs.InPlacement() {
		return false, Empty
	}
	for _, p := range []Piece{White, Black} {
		if gs.OnBoard[p] < FlyingPieces {
			return true, Opponent(p)
		}
	}
	if len(LegalMoves(gs)) == 0 {
		return true, Opponent(gs.CurrentPlayer)
	}
	return false, Empty
}

// Hash identifies the position: board, counters and side to move. History is not
// part of it.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Placed))

	for _, p := range Tiles {
		hasher.Write([]byte{byte(gs.Board[p.Y][p.X])})
	}
	for _, piece := range []Piece{White, Black} {
		binary.Write(hasher, binary.LittleEndian, int64(gs.OnBoard[piece]))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Removed[piece]))
	}

	return StateHash(hasher.Sum64())
}

// String draws the grid, W and B for pieces, '.' for empty tiles.
func (gs *GameState) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := Point{x, y}
			switch {
			case !IsTile(p):
				sb.WriteByte(' ')
			case gs.Board[y][x] == White:
				sb.WriteByte('W')
			case gs.Board[y][x] == Black:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s to move, %s phase, placed %d, white %d (-%d), black %d (-%d)\n",
		gs.CurrentPlayer, gs.Phase(), gs.Placed,
		gs.OnBoard[White], gs.Removed[White], gs.OnBoard[Black], gs.Removed[Black])
	return sb.String()
}
