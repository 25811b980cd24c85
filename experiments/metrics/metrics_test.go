package metrics

import (
	"encoding/csv"
	"mill/game"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "%s should exist", path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 4)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 400, m.Nodes)
		require.Equal(t, 400, m.Leaves)
		require.Equal(t, 4, m.Cutoffs)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddNode()
		c.Start(2, 1)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, 1)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestSummarize(t *testing.T) {
	games := []GameRecord{
		{ID: 1, White: 1, Black: 2, GameMetric: GameMetric{Winner: game.White}},
		{ID: 2, White: 2, Black: 1, GameMetric: GameMetric{Winner: game.Empty}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Player: game.White, SearchMetric: SearchMetric{Nodes: 10, Duration: time.Millisecond}}},
		{Game: 1, MoveMetric: MoveMetric{Player: game.Black, SearchMetric: SearchMetric{Nodes: 1}}},
		{Game: 2, MoveMetric: MoveMetric{Player: game.Black, SearchMetric: SearchMetric{Nodes: 30, Duration: 3 * time.Millisecond}}},
		{Game: 3, MoveMetric: MoveMetric{Player: game.White, SearchMetric: SearchMetric{Nodes: 99}}},
	}

	summaries := Summarize(games, moves)

	require.Len(t, summaries, 2)
	first := summaries[0]
	require.Equal(t, 1, first.Agent, "Summaries should be ordered by agent")
	require.Equal(t, 2, first.Games)
	require.Equal(t, 1, first.Wins)
	require.Equal(t, 1, first.Draws)
	require.Equal(t, 2, first.Moves, "Agent 1 played White in game 1 and Black in game 2")
	require.InDelta(t, 20.0, first.MeanNodes, 1e-9)
	require.InDelta(t, 14.142, first.StdNodes, 1e-3)
	require.InDelta(t, 2.0, first.MeanDuration, 1e-9)

	second := summaries[1]
	require.Equal(t, 1, second.Losses)
	require.Equal(t, 1, second.Draws)
	require.Equal(t, 1, second.Moves, "Moves of unknown games should be ignored")
	require.Zero(t, second.StdNodes, "A single move has no spread")
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "unit")
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(filepath.Dir(w.Dir())), "Results should go under dir/name/<timestamp>")

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: SearchAgent, Depth: 2, Goroutines: 1}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, White: 1, Black: 2, GameMetric: GameMetric{Winner: game.Black, Reason: "win", TotalMoves: 40}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.White, Turn: "place (0,0)"}}}))
	require.NoError(t, w.WriteSummaries([]Summary{{Agent: 1, Games: 1}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "kind", "depth", "goroutines", "seed"}, {"1", "search", "2", "1", "0"}}, configs)

	records := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, records, 2)
	require.Equal(t, "Black", records[1][3])
	require.Equal(t, "40", records[1][8])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, "place (0,0)", moves[1][3])

	summary := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
	require.Len(t, summary, 2)
	require.Equal(t, "1", summary[1][0])
}

func TestWriterSeparatesRuns(t *testing.T) {
	dir := t.TempDir()

	first, err := NewWriter(dir, "unit")
	require.NoError(t, err)
	second, err := NewWriter(dir, "unit")
	require.NoError(t, err)

	require.NotEqual(t, first.Dir(), second.Dir(), "Two runs should never share a folder")
	require.NoError(t, first.WriteSummaries([]Summary{{Agent: 1}}))
	require.NoError(t, second.WriteSummaries([]Summary{{Agent: 2}}))
	require.Equal(t, "1", readCSV(t, filepath.Join(first.Dir(), "summary.csv"))[1][0], "The first run should keep its own results")
}
