package agent

import (
	"mill/experiments/metrics"
	"mill/game"
	"mill/searcher"
)

type searchAgent struct {
	search *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta best turn.
func NewSearchAgent(search *searcher.AlphaBeta) Agent {
	return searchAgent{search: search}
}

func (a searchAgent) FindTurn(state *game.GameState) (game.Turn, metrics.SearchMetric, bool) {
	result, ok := a.search.FindMove(state)
	return result.Turn, result.Metric, ok
}
