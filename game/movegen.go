package game

// LegalMoves returns every placement or move available to the current player, in
// tile enumeration order.
func LegalMoves(gs *GameState) []Move {
	return movesFor(gs, gs.CurrentPlayer)
}

func movesFor(gs *GameState, player Piece) []Move {
	if gs.InPlacement() {
		if gs.InHand(player) <= 0 {
			return nil
		}
		moves := []Move{}
		for _, p := range Tiles {
			if gs.Board[p.Y][p.X] == Empty {
				moves = append(moves, Place(p))
			}
		}
		return moves
	}

	flying := gs.OnBoard[player] <= FlyingPieces
	moves := []Move{}
	for _, from := range Tiles {
		if gs.Board[from.Y][from.X] != player {
			continue
		}
		if flying {
			for _, to := range Tiles {
				if gs.Board[to.Y][to.X] == Empty {
					moves = append(moves, Slide(from, to))
				}
			}
			continue
		}
		for _, to := range Neighbors(from) {
			if gs.Board[to.Y][to.X] == Empty {
				moves = append(moves, Slide(from, to))
			}
		}
	}
	return moves
}

// LegalRemovals returns the opponent pieces the current player may take after
// closing a mill.
func LegalRemovals(gs *GameState) []Move {
	opponent := Opponent(gs.CurrentPlayer)
	unmilled := gs.hasUnmilled(opponent)

	removals := []Move{}
	for _, p := range Tiles {
		if gs.Board[p.Y][p.X] != opponent {
			continue
		}
		if unmilled && gs.InMill(p) {
			continue
		}
		removals = append(removals, Capture(p))
	}
	return removals
}

// LegalTurns expands LegalMoves into full plies: a move that closes a mill becomes
// one turn per removable opponent piece. The opponent's pieces are untouched by the
// mover's own move, so the removal set is the same for every mill-closing move.
// While a removal is owed, the turns are the removals alone.
func LegalTurns(gs *GameState) []Turn {
	if gs.RemovalOwed() {
		removals := LegalRemovals(gs)
		turns := make([]Turn, len(removals))
		for i, r := range removals {
			turns[i] = Turn{Move: r}
		}
		return turns
	}

	moves := LegalMoves(gs)
	turns := make([]Turn, 0, len(moves))

	var removals []Move
	for _, m := range moves {
		if !gs.WouldFormMill(m) {
			turns = append(turns, Turn{Move: m})
			continue
		}
		if removals == nil {
			removals = LegalRemovals(gs)
		}
		if len(removals) == 0 {
			turns = append(turns, Turn{Move: m})
			continue
		}
		for i := range removals {
			turns = append(turns, Turn{Move: m, Removal: &removals[i]})
		}
	}
	return turns
}
