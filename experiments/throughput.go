package experiments

import "mill/experiments/metrics"

// RunThroughputExperiment measures how splitting the root over more goroutines
// changes search time at a fixed depth. Both players of a match up share a config
// for the same playing strength and similar game length.
func RunThroughputExperiment(dir string, games, depth int) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := []MatchUp{}
	for i, goroutines := range []int{1, 2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.SearchAgent, Depth: depth, Goroutines: goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{config, config})
	}

	return Run("throughput", dir, configs, matchUps, games)
}
