package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("empty board is balanced", func(t *testing.T) {
		require.Equal(t, 0, Evaluate(NewGameState()))
	})

	t.Run("a single formed mill", func(t *testing.T) {
		gs := NewGameState()
		mustPlace(t, gs, pt(0, 0), pt(1, 1), pt(3, 0), pt(5, 5), pt(6, 0))

		require.Equal(t, 600000, Evaluate(gs))
	})

	t.Run("an open two during placement", func(t *testing.T) {
		gs := NewGameState()
		mustPlace(t, gs, pt(0, 0), pt(1, 1), pt(3, 0))

		// White can complete and has an open two, Black can block it.
		require.Equal(t, CompleteMillScore+OpenTwoScore-BlockMillScore, Evaluate(gs))
	})

	t.Run("completing a mill by sliding", func(t *testing.T) {
		gs := setupMoving(
			[]Point{pt(0, 0), pt(3, 0), pt(6, 3), pt(2, 4)},
			[]Point{pt(1, 1), pt(5, 5), pt(4, 2), pt(0, 6)},
			Black,
		)

		require.Equal(t, CompleteMillScore+OpenTwoScore, Evaluate(gs))
	})

	t.Run("an open two nobody can reach", func(t *testing.T) {
		gs := setupMoving(
			[]Point{pt(0, 0), pt(3, 0), pt(6, 6), pt(2, 4)},
			[]Point{pt(1, 1), pt(5, 5), pt(4, 2), pt(0, 6)},
			Black,
		)

		require.Equal(t, OpenTwoScore, Evaluate(gs))
	})

	t.Run("decided games", func(t *testing.T) {
		blocked := setupMoving(
			[]Point{pt(3, 1), pt(0, 6), pt(1, 3), pt(6, 3)},
			[]Point{pt(0, 0), pt(3, 0), pt(0, 3), pt(6, 0)},
			Black,
		)
		require.Equal(t, WinScore, Evaluate(blocked))

		beaten := setupMoving([]Point{pt(0, 0), pt(3, 1)}, []Point{pt(1, 1), pt(5, 5), pt(4, 2)}, White)
		require.Equal(t, -WinScore, Evaluate(beaten))
	})

	t.Run("tiers are mirrored for Black", func(t *testing.T) {
		gs := NewGameState()
		mustPlace(t, gs, pt(6, 6), pt(0, 0), pt(5, 5), pt(3, 0), pt(1, 1), pt(6, 0))

		require.Equal(t, -600000, Evaluate(gs))
	})
}
