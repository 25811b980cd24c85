package agent

import (
	"mill/experiments/metrics"
	"mill/game"
)

type Agent interface {
	// FindTurn returns the turn to play and the search metrics, if collected. It
	// reports false when the player has nothing to play.
	FindTurn(state *game.GameState) (game.Turn, metrics.SearchMetric, bool)
}
