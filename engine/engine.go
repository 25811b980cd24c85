package engine

import (
	"mill/experiments/metrics"
	"mill/game"
)

// MaxTurns caps a game; reaching it is a draw.
const MaxTurns = 500

// Repetitions of one position that end a game in a draw.
const Repetitions = 3

// Reasons a game ends.
const (
	ReasonWin        = "win"
	ReasonRepetition = "repetition"
	ReasonMaxTurns   = "max-turns"
)

type Engine interface {
	// Run plays a game till there's a winner, a position repeats or a max number
	// of turns is reached. The winner is game.Empty for a draw.
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
