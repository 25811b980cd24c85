package agent

import (
	"mill/experiments/metrics"
	"mill/game"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that samples uniformly among the legal turns.
// Agents created with the same seed play the same turns.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindTurn(state *game.GameState) (game.Turn, metrics.SearchMetric, bool) {
	start := time.Now()
	turns := game.LegalTurns(state)
	if len(turns) == 0 {
		return game.Turn{}, metrics.SearchMetric{}, false
	}

	a.mu.Lock()
	i := a.rng.Intn(len(turns))
	a.mu.Unlock()

	return turns[i], metrics.SearchMetric{Nodes: 1, Leaves: len(turns), Duration: time.Since(start)}, true
}
