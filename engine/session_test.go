package engine

import (
	"bytes"
	"errors"
	"mill/game"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the global logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
	return &buf
}

func TestSession(t *testing.T) {
	t.Run("placing by coordinates", func(t *testing.T) {
		s := NewSession()

		mill, err := s.Place(0, 0)

		require.NoError(t, err)
		require.False(t, mill)
		require.Equal(t, game.White, s.State().PieceAt(game.Point{X: 0, Y: 0}))
		require.Equal(t, game.Black, s.State().CurrentPlayer, "The turn should pass to Black")
	})

	t.Run("errors pass through", func(t *testing.T) {
		s := NewSession()

		_, err := s.Place(3, 3)
		require.True(t, errors.Is(err, game.ErrInvalidPosition), "The centre is not a tile")

		_, err = s.Move(0, 0, 0, 3)
		require.True(t, errors.Is(err, game.ErrPhase), "Moving is not allowed during placement")

		err = s.Remove(0, 0)
		require.True(t, errors.Is(err, game.ErrNotOpponent), "An empty cell cannot be removed")

		err = s.Undo()
		require.True(t, errors.Is(err, game.ErrEmptyHistory))
	})

	t.Run("mill, removal and undo", func(t *testing.T) {
		s := NewSession()
		for _, p := range [][2]int{{0, 0}, {1, 1}, {0, 3}, {5, 5}} {
			_, err := s.Place(p[0], p[1])
			require.NoError(t, err)
		}

		mill, err := s.Place(0, 6)
		require.NoError(t, err)
		require.True(t, mill, "Completing the column should form a mill")
		require.Equal(t, []game.Move{game.Capture(game.Point{X: 1, Y: 1}), game.Capture(game.Point{X: 5, Y: 5})}, s.ValidMoves(),
			"A pending mill should offer the removals")

		require.NoError(t, s.Remove(1, 1))
		require.Equal(t, game.Black, s.State().CurrentPlayer)
		require.Equal(t, 1, s.State().Removed[game.Black])

		require.NoError(t, s.Undo())
		require.Equal(t, game.White, s.State().CurrentPlayer, "Undoing the removal should return the turn to the remover")
		require.Equal(t, 0, s.State().Removed[game.Black])
		require.Equal(t, game.Black, s.State().PieceAt(game.Point{X: 1, Y: 1}))
	})

	t.Run("best move after a mill is the removal", func(t *testing.T) {
		s := NewSession()
		for _, p := range [][2]int{{0, 0}, {1, 1}, {0, 3}, {5, 5}} {
			_, err := s.Place(p[0], p[1])
			require.NoError(t, err)
		}
		mill, err := s.Place(0, 6)
		require.NoError(t, err)
		require.True(t, mill)

		result, ok := s.BestMove(2)

		require.True(t, ok)
		require.Equal(t, game.RemoveAction, result.Turn.Move.Type, "The owed removal should come first")
		require.Nil(t, result.Turn.Removal)
		require.Contains(t, s.ValidMoves(), result.Turn.Move, "BestMove should agree with ValidMoves")

		require.NoError(t, s.Play(result.Turn))
		state := s.State()
		require.Equal(t, 1, state.Removed[game.Black])
		require.Equal(t, 3, state.OnBoard[game.White])
		require.Equal(t, game.Black, state.CurrentPlayer)
	})

	t.Run("playing a move while a removal is owed", func(t *testing.T) {
		s := NewSession()
		for _, p := range [][2]int{{0, 0}, {1, 1}, {0, 3}, {5, 5}, {0, 6}} {
			_, err := s.Place(p[0], p[1])
			require.NoError(t, err)
		}

		err := s.Play(game.Turn{Move: game.Place(game.Point{X: 1, Y: 3})})

		require.True(t, errors.Is(err, game.ErrPhase), "Placing again should be refused")
		require.Equal(t, game.Empty, s.State().PieceAt(game.Point{X: 1, Y: 3}))
		require.True(t, s.State().RemovalOwed())
	})

	t.Run("rejected undo is logged", func(t *testing.T) {
		buf := captureLogs(t)

		err := NewSession().Undo()

		require.True(t, errors.Is(err, game.ErrEmptyHistory))
		require.Contains(t, buf.String(), "undo rejected")
	})

	t.Run("valid moves at the start", func(t *testing.T) {
		require.Len(t, NewSession().ValidMoves(), len(game.Tiles))
	})

	t.Run("state is a copy", func(t *testing.T) {
		s := NewSession()
		state := s.State()
		state.Board[0][0] = game.Black

		require.Equal(t, game.Empty, s.State().PieceAt(game.Point{X: 0, Y: 0}), "Changing the copy should not change the session")
	})

	t.Run("best move leaves the game untouched", func(t *testing.T) {
		s := NewSession()
		_, err := s.Place(0, 0)
		require.NoError(t, err)
		before := s.State().Hash()

		result, ok := s.BestMove(2)

		require.True(t, ok)
		require.Equal(t, game.PlaceAction, result.Turn.Move.Type)
		require.Equal(t, before, s.State().Hash())
		require.Len(t, s.State().History, 1)
		require.NoError(t, s.Play(result.Turn), "The suggested turn should be playable")
	})

	t.Run("start resets", func(t *testing.T) {
		s := NewSession()
		_, err := s.Place(0, 0)
		require.NoError(t, err)

		s.Start()

		require.Empty(t, s.State().History)
		require.Equal(t, game.White, s.State().CurrentPlayer)
		over, _ := s.IsTerminal()
		require.False(t, over)
	})
}
