package main

import (
	"flag"
	"fmt"
	"mill/experiments"
	"mill/experiments/metrics"
	"mill/meta"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "match", "Experiment to run: match, depth or throughput")
	games := flag.Int("games", meta.GAMES, "Number of games per match up")
	depth := flag.Int("depth", meta.DEPTH, "Search depth in plies")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines splitting the root moves")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the random baseline")
	out := flag.String("out", meta.OUT_DIR, "Directory for experiment results")
	level := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	pretty := flag.Bool("pretty", true, "Human-readable console logs")
	flag.Parse()

	if err := setupLogging(*level, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var dir string
	var err error
	switch *experiment {
	case "match":
		search := metrics.AgentConfig{ID: 1, Kind: metrics.SearchAgent, Depth: *depth, Goroutines: *goroutines}
		random := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: *seed}
		dir, err = experiments.Run("match", *out, []metrics.AgentConfig{search, random},
			[]experiments.MatchUp{{search, random}}, *games)
	case "depth":
		dir, err = experiments.RunDepthExperiment(*out, *games)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(*out, *games, *depth)
	default:
		err = fmt.Errorf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results stored in %s", dir)
}

func setupLogging(level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}
