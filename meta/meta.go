// meta/meta.go
package meta

// GAMES defines the number of games per match up.
const GAMES = 10

// DEPTH defines the search depth in plies.
const DEPTH = 3

// GO_ROUTINES defines the number of goroutines splitting the root moves.
const GO_ROUTINES = 1

// SEED defines the seed of the random baseline.
const SEED = 1

// OUT_DIR defines where experiment results are stored.
const OUT_DIR = "experiments"
