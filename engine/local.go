package engine

import (
	"errors"
	"fmt"
	"mill/experiments/metrics"
	"mill/game"
	"mill/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	session *Session
	agents  [3]agent.Agent // Indexed by game.Piece
}

// NewLocal returns an engine running a game between two in-process agents.
func NewLocal(white, black agent.Agent) *Local {
	if white == nil || black == nil {
		panic("need an agent for each player")
	}
	l := &Local{session: NewSession()}
	l.agents[game.White] = white
	l.agents[game.Black] = black
	return l
}

// Run executes the entire game loop until the game ends.
func (l *Local) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}
	seen := map[game.StateHash]int{l.session.state.Hash(): 1}

	log.Info().Msgf("player %s is starting", l.session.state.CurrentPlayer)

	winner := game.Empty
	step := 0
	for {
		if over, w := l.session.IsTerminal(); over {
			winner, gameMetric.Reason = w, ReasonWin
			break
		}
		if step >= MaxTurns {
			gameMetric.Reason = ReasonMaxTurns
			break
		}
		step++

		player := l.session.state.CurrentPlayer
		turn, searchMetric, ok := l.agents[player].FindTurn(l.session.State())
		if !ok {
			turn = l.fallback(player, errors.New("agent found no turn"))
		} else if err := l.session.Play(turn); err != nil {
			turn = l.fallback(player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Turn:         turn.String(),
			SearchMetric: searchMetric,
		})

		hash := l.session.state.Hash()
		seen[hash]++
		if seen[hash] >= Repetitions {
			gameMetric.Reason = ReasonRepetition
			break
		}
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step

	log.Info().Msgf("game over after %d turns: %s (%s)", step, describe(winner), gameMetric.Reason)
	return winner, gameMetric, moveMetrics
}

// fallback plays the first legal turn in place of one the agent failed to give.
func (l *Local) fallback(player game.Piece, cause error) game.Turn {
	turns := game.LegalTurns(l.session.state)
	if len(turns) == 0 {
		panic("no legal turns at all")
	}
	log.Warn().Err(cause).Str("player", player.String()).Msgf("agent turn rejected, playing %s", turns[0])
	if err := l.session.Play(turns[0]); err != nil {
		panic(fmt.Sprintf("first legal turn %s was rejected: %v", turns[0], err))
	}
	return turns[0]
}

func describe(winner game.Piece) string {
	if winner == game.Empty {
		return "draw"
	}
	return winner.String() + " wins"
}
