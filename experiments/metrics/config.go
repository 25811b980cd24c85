package metrics

type AgentKind string

const (
	SearchAgent AgentKind = "search"
	RandomAgent AgentKind = "random"
)

// AgentConfig describes one player of an experiment. Depth and Goroutines apply to
// search agents, Seed to random agents.
type AgentConfig struct {
	ID         int
	Kind       AgentKind
	Depth      int
	Goroutines int
	Seed       uint64
}
