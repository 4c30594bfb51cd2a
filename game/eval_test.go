package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateThreats(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateThreats(NewBoard(), PlayerA, PlayerB))
	})

	t.Run("open three favors its owner", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"..AAA..",
		)

		score := EvaluateThreats(b, PlayerA, PlayerB)

		require.Greater(t, score, 0.0, "Open three should score positive for its owner")
		require.Equal(t, 2.0, score, "Both open ends complete the line")
	})

	t.Run("mirrored open three favors the opponent", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"..BBB..",
		)

		score := EvaluateThreats(b, PlayerA, PlayerB)

		require.Less(t, score, 0.0, "Opponent's open three should score negative")
		require.Equal(t, -2.0, score)
	})

	t.Run("runs on both sides of a gap combine", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"AA.A...",
		)

		require.Equal(t, 1.0, EvaluateThreats(b, PlayerA, PlayerB))
	})

	t.Run("runs of different players count separately", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			".......",
			"AAA.BBB",
		)

		require.Equal(t, 0.0, EvaluateThreats(b, PlayerA, PlayerB), "Threats of both players cancel out")
	})

	t.Run("vertical three scores once at its top", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			"B......",
			"B......",
			"BA.....",
		)

		require.Equal(t, 1.0, EvaluateThreats(b, PlayerB, PlayerA))
	})

	t.Run("win sentinels", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			"BBB....",
			"AAAA...",
		)

		require.True(t, math.IsInf(EvaluateThreats(b, PlayerA, PlayerB), 1))
		require.True(t, math.IsInf(EvaluateThreats(b, PlayerB, PlayerA), -1))
	})

	t.Run("dual win is scored heuristically", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			".......",
			"BBBB...",
			"AAAA...",
		)

		score := EvaluateThreats(b, PlayerA, PlayerB)

		require.False(t, math.IsInf(score, 0), "No sentinel should be returned without a single winner")
	})

	t.Run("pure function of the board", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			"...B...",
			"..AA...",
			".BAB...",
			"ABBA.A.",
		)
		before := b.Copy()

		first := EvaluateThreats(b, PlayerA, PlayerB)
		second := EvaluateThreats(b, PlayerA, PlayerB)

		require.Equal(t, first, second)
		require.True(t, before.Equal(b), "Evaluation should not modify the board")
	})
}

func TestEvaluateWindows(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateWindows(NewBoard(), PlayerA, PlayerB))
	})

	t.Run("antisymmetric in the players", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			".......",
			"...A...",
			"..BA...",
			".BAAB..",
		)

		require.Equal(t, EvaluateWindows(b, PlayerA, PlayerB), -EvaluateWindows(b, PlayerB, PlayerA))
		require.Greater(t, EvaluateWindows(b, PlayerA, PlayerB), 0.0)
	})

	t.Run("win sentinels", func(t *testing.T) {
		b := mustParse(t,
			".......",
			".......",
			"A......",
			"A......",
			"AB.....",
			"AB.....",
		)

		require.True(t, math.IsInf(EvaluateWindows(b, PlayerA, PlayerB), 1))
	})
}

func TestLookupEvaluator(t *testing.T) {
	evaluate, err := LookupEvaluator("threats")
	require.NoError(t, err)
	require.NotNil(t, evaluate)

	_, err = LookupEvaluator("neural")
	require.Error(t, err)
}
