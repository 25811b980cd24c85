package searcher

import (
	"fmt"
	"mill/experiments/metrics"
	"mill/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning over full
// turns. It never mutates the state it is given and keeps no state between
// searches, so one instance can serve several games.
type AlphaBeta struct {
	depth      int
	goroutines int
	evaluate   game.Evaluator
	collector  func() metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

// WithGoroutines splits the root turns across n workers.
func WithGoroutines(n int) Option {
	return func(ab *AlphaBeta) {
		if n > 0 {
			ab.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.collector = metrics.NewCollector
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		evaluate:   game.Evaluate,
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

func (ab *AlphaBeta) Goroutines() int {
	return ab.goroutines
}

// FindMove searches the state to the configured depth.
func (ab *AlphaBeta) FindMove(state *game.GameState) (Result, bool) {
	return ab.BestMove(state, ab.depth)
}

// BestMove returns the best turn for the player to move, looking depth plies
// ahead. A depth below one is treated as one. It reports false when the game is
// decided or the player has nothing to play.
func (ab *AlphaBeta) BestMove(state *game.GameState, depth int) (Result, bool) {
	if depth < 1 {
		depth = 1
	}
	c := ab.collector()
	c.Start(depth, ab.goroutines)

	root := state.Copy()
	if over, _ := root.IsTerminal(); over {
		return Result{Metric: c.Complete()}, false
	}
	turns := game.LegalTurns(root)
	if len(turns) == 0 {
		return Result{Metric: c.Complete()}, false
	}

	var best, score int
	if ab.goroutines > 1 && len(turns) > 1 {
		best, score = ab.searchParallel(root, turns, depth, c)
	} else {
		best, score = ab.searchRoot(root, turns, depth, c)
	}

	metric := c.Complete()
	metric.Score = score
	log.Debug().
		Str("player", root.CurrentPlayer.String()).
		Str("turn", turns[best].String()).
		Int("score", score).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Msg("alphabeta best move")

	return Result{Turn: turns[best], Score: score, Metric: metric}, true
}

func (ab *AlphaBeta) searchRoot(root *game.GameState, turns []game.Turn, depth int, c metrics.Collector) (int, int) {
	player := root.CurrentPlayer
	alpha, beta := negInf, posInf
	bestIndex, bestScore := 0, 0

	c.AddNode()
	for i, t := range turns {
		mustPlay(root, t)
		score := ab.alphaBeta(root, depth-1, alpha, beta, c)
		root.UndoTurn(t)

		if i == 0 || better(player, score, bestScore) {
			bestIndex, bestScore = i, score
		}
		if player == game.White {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
	}
	return bestIndex, bestScore
}

// searchParallel scores every root turn with a full window, each worker playing
// on its own copy of the root. Scores are exact, so picking the first best turn
// gives the same answer as the sequential search.
func (ab *AlphaBeta) searchParallel(root *game.GameState, turns []game.Turn, depth int, c metrics.Collector) (int, int) {
	task := make(chan int, len(turns))
	for i := range turns {
		task <- i
	}
	close(task)

	scores := make([]int, len(turns))
	c.AddNode()

	var g errgroup.Group
	for w := 0; w < min(ab.goroutines, len(turns)); w++ {
		g.Go(func() error {
			node := root.Copy()
			for i := range task {
				if err := node.PlayTurn(turns[i]); err != nil {
					return fmt.Errorf("failed to play root turn %s: %w", turns[i], err)
				}
				scores[i] = ab.alphaBeta(node, depth-1, negInf, posInf, c)
				node.UndoTurn(turns[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	player := root.CurrentPlayer
	bestIndex := 0
	for i := 1; i < len(scores); i++ {
		if better(player, scores[i], scores[bestIndex]) {
			bestIndex = i
		}
	}
	return bestIndex, scores[bestIndex]
}

func (ab *AlphaBeta) alphaBeta(node *game.GameState, depth, alpha, beta int, c metrics.Collector) int {
	c.AddNode()
	if over, _ := node.IsTerminal(); over || depth == 0 {
		c.AddLeaf()
		return ab.evaluate(node)
	}
	turns := game.LegalTurns(node)
	if len(turns) == 0 {
		c.AddLeaf()
		return ab.evaluate(node)
	}

	if node.CurrentPlayer == game.White {
		value := negInf
		for _, t := range turns {
			mustPlay(node, t)
			value = max(value, ab.alphaBeta(node, depth-1, alpha, beta, c))
			node.UndoTurn(t)
			alpha = max(alpha, value)
			if alpha >= beta {
				c.AddCutoff()
				break
			}
		}
		return value
	}

	value := posInf
	for _, t := range turns {
		mustPlay(node, t)
		value = min(value, ab.alphaBeta(node, depth-1, alpha, beta, c))
		node.UndoTurn(t)
		beta = min(beta, value)
		if alpha >= beta {
			c.AddCutoff()
			break
		}
	}
	return value
}

// mustPlay applies a generated turn. Generated turns are legal, so a rejection
// means the state and the generator disagree.
func mustPlay(state *game.GameState, t game.Turn) {
	if err := state.PlayTurn(t); err != nil {
		panic(fmt.Sprintf("generated turn %s was rejected: %v", t, err))
	}
}
