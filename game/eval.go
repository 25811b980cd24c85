package game

// Score bands of Evaluate, from the most to the least important fact.
const (
	WinScore          = 1_000_000
	PreventLossScore  = 900_000
	CompleteMillScore = 800_000
	BlockMillScore    = 700_000
	MillScore         = 600_000
	OpenTwoScore      = 500_000
)

// Evaluate scores the state from White's point of view. A decided game scores
// ±WinScore alone; otherwise every tier is computed for both sides, White adding
// and Black subtracting.
func Evaluate(gs *GameState) int {
	if over, winner := gs.IsTerminal(); over {
		return sign(winner) * WinScore
	}

	score := 0
	for _, player := range []Piece{White, Black} {
		score += sign(player) * gs.sideScore(player)
	}
	return score
}

func sign(player Piece) int {
	if player == Black {
		return -1
	}
	return 1
}

func (gs *GameState) sideScore(player Piece) int {
	own := gs.openTwos(player)
	theirs := gs.openTwos(Opponent(player))

	score := 0
	if gs.canPreventLoss(player) {
		score += PreventLossScore
	}
	if gs.canFillAny(player, own) {
		score += CompleteMillScore
	}
	if gs.canFillAny(player, theirs) {
		score += BlockMillScore
	}
	score += MillScore * gs.formedMills(player)
	score += OpenTwoScore * len(own)
	return score
}

// canPreventLoss is true when both sides are down to flying strength, or, once
// placement is over, when the player has no move left.
func (gs *GameState) canPreventLoss(player Piece) bool {
	if gs.OnBoard[White] <= FlyingPieces && gs.OnBoard[Black] <= FlyingPieces {
		return true
	}
	return !gs.InPlacement() && len(movesFor(gs, player)) == 0
}

// openTwo is a line holding two pieces of one side and an empty slot.
type openTwo struct {
	line Mill
	slot Point
}

func (gs *GameState) openTwos(player Piece) []openTwo {
	var out []openTwo
	for _, line := range Mills {
		if gs.lineCount(line, player) != 2 || gs.lineCount(line, Empty) != 1 {
			continue
		}
		for _, p := range line {
			if gs.Board[p.Y][p.X] == Empty {
				out = append(out, openTwo{line: line, slot: p})
			}
		}
	}
	return out
}

func (gs *GameState) canFillAny(player Piece, targets []openTwo) bool {
	for _, t := range targets {
		if gs.canFill(player, t) {
			return true
		}
	}
	return false
}

// canFill reports whether player can put a piece on the target's slot with its next
// action, using a piece that is not itself part of the target line.
func (gs *GameState) canFill(player Piece, t openTwo) bool {
	if gs.InPlacement() {
		return gs.InHand(player) > 0
	}
	if gs.OnBoard[player] == FlyingPieces {
		return gs.OnBoard[player]-gs.lineCount(t.line, player) > 0
	}
	for _, n := range Neighbors(t.slot) {
		if gs.Board[n.Y][n.X] == player && !onLine(t.line, n) {
			return true
		}
	}
	return false
}

func onLine(line Mill, p Point) bool {
	for _, q := range line {
		if q == p {
			return true
		}
	}
	return false
}

func (gs *GameState) formedMills(player Piece) int {
	n := 0
	for _, line := range Mills {
		if gs.lineCount(line, player) == 3 {
			n++
		}
	}
	return n
}
