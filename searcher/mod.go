package searcher

import (
	"math"
	"mill/experiments/metrics"
	"mill/game"
)

// DefaultDepth is the search depth in plies when WithDepth is not given.
const DefaultDepth = 3

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

// Result is the outcome of a search: the chosen turn, its backed-up score from
// White's point of view and the search metrics, if collected.
type Result struct {
	Turn   game.Turn
	Score  int
	Metric metrics.SearchMetric
}

// better reports whether score improves on best for the given side. White
// maximizes, Black minimizes. Ties never improve, so the first best turn in
// generation order is kept.
func better(player game.Piece, score, best int) bool {
	if player == game.White {
		return score > best
	}
	return score < best
}
