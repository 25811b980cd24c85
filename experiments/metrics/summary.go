package metrics

import (
	"math"
	"mill/game"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games and moves of one agent across an experiment.
// Durations are in milliseconds.
type Summary struct {
	Agent        int // AgentConfig.ID
	Games        int
	Wins         int
	Losses       int
	Draws        int
	Moves        int
	MeanDuration float64
	StdDuration  float64
	MeanNodes    float64
	StdNodes     float64
}

// Summarize computes per-agent results ordered by agent ID. Standard deviations
// are zero for agents with fewer than two moves.
func Summarize(games []GameRecord, moves []MoveRecord) []Summary {
	byAgent := map[int]*Summary{}
	durations := map[int][]float64{}
	nodes := map[int][]float64{}

	get := func(id int) *Summary {
		s, ok := byAgent[id]
		if !ok {
			s = &Summary{Agent: id}
			byAgent[id] = s
		}
		return s
	}

	players := map[int][3]int{} // Game ID to agent IDs, indexed by game.Piece
	for _, g := range games {
		var agents [3]int
		agents[game.White], agents[game.Black] = g.White, g.Black
		players[g.ID] = agents

		for _, piece := range []game.Piece{game.White, game.Black} {
			s := get(agents[piece])
			s.Games++
			switch g.Winner {
			case game.Empty:
				s.Draws++
			case piece:
				s.Wins++
			default:
				s.Losses++
			}
		}
	}

	for _, m := range moves {
		agents, ok := players[m.Game]
		if !ok {
			continue
		}
		id := agents[m.Player]
		get(id).Moves++
		durations[id] = append(durations[id], float64(m.Duration.Microseconds())/1000)
		nodes[id] = append(nodes[id], float64(m.Nodes))
	}

	summaries := make([]Summary, 0, len(byAgent))
	for id, s := range byAgent {
		s.MeanDuration, s.StdDuration = meanStdDev(durations[id])
		s.MeanNodes, s.StdNodes = meanStdDev(nodes[id])
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Agent < summaries[j].Agent })
	return summaries
}

func meanStdDev(values []float64) (float64, float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	mean, std := stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}
