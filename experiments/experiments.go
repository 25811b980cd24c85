package experiments

import (
	"fmt"
	"mill/engine"
	"mill/experiments/metrics"
	"mill/game"
	"mill/searcher"
	"mill/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

// MatchUp pairs two agents. Colours alternate between the games of a match up,
// the first agent playing White in the first game.
type MatchUp [2]metrics.AgentConfig

// RunDepthExperiment pairs search agents of increasing depth against a random
// baseline.
func RunDepthExperiment(dir string, games int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.SearchAgent, Depth: 1, Goroutines: 1},
		{ID: 2, Kind: metrics.SearchAgent, Depth: 2, Goroutines: 1},
		{ID: 3, Kind: metrics.SearchAgent, Depth: 3, Goroutines: 1},
		{ID: 4, Kind: metrics.SearchAgent, Depth: 4, Goroutines: 4},
	}

	matchUps := []MatchUp{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, MatchUp{config, baseline})
	}

	return Run("depth", dir, append(depthConfigs, baseline), matchUps, games)
}

// Run plays every match up the given number of times and writes the records and
// their summary under dir/name/<timestamp>. It returns that directory.
func Run(name, dir string, configs []metrics.AgentConfig, matchUps []MatchUp, games int) (string, error) {
	if games <= 0 {
		games = NumGames
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			white, black := matchUp[0], matchUp[1]
			if i%2 == 1 {
				white, black = black, white
			}

			count++
			winner, gameMetric, moveMetrics := runGame(white, black, count)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	if err := writer.WriteSummaries(metrics.Summarize(gameRecords, moveRecords)); err != nil {
		return "", fmt.Errorf("failed to store summary: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment results")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(white, black metrics.AgentConfig, id int) (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocal(newAgent(white, id), newAgent(black, id))
	return e.Run()
}

// newAgent builds the agent of a config. Random agents are reseeded for every game
// so that repeated games differ but stay reproducible.
func newAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + uint64(gameID))
	case metrics.SearchAgent:
		return agent.NewSearchAgent(createSearch(config))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func createSearch(config metrics.AgentConfig) *searcher.AlphaBeta {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewAlphaBeta(options...)
}
