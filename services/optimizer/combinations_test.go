package optimizer

import (
	"testing"

	"seatwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryOf(tables ...models.Table) map[string]models.Table {
	registry := make(map[string]models.Table, len(tables))
	for _, t := range tables {
		registry[t.TableID] = t
	}
	return registry
}

func singleIDs(result models.RecommendationResult) []string {
	var ids []string
	for _, r := range result.Recommendations {
		if !r.RequiresCombination {
			ids = append(ids, r.TableID)
		}
	}
	return ids
}

func combos(result models.RecommendationResult) [][]string {
	var out [][]string
	for _, r := range result.Recommendations {
		if r.RequiresCombination {
			out = append(out, r.CombinedTableIDs)
		}
	}
	return out
}

func TestSingleTableCapacityBounds(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "big", MinCapacity: 6, MaxCapacity: 10},
		models.Table{TableID: "deuce", MinCapacity: 2, MaxCapacity: 4},
	)

	result := recommend(registry, 2)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"deuce"}, singleIDs(result), "oversized tables are excluded, not just ranked lower")

	result = recommend(registry, 5)
	assert.Empty(t, singleIDs(result), "5 is below big's minimum and above deuce's maximum")
}

func TestSingleTablesRankedSnuggestFirst(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "t8", MinCapacity: 1, MaxCapacity: 8},
		models.Table{TableID: "t4", MinCapacity: 1, MaxCapacity: 4},
		models.Table{TableID: "t6", MinCapacity: 1, MaxCapacity: 6},
	)

	result := recommend(registry, 3)
	assert.Equal(t, []string{"t4", "t6", "t8"}, singleIDs(result))
}

func TestMutualCombination(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "A", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true, CombinableWith: []string{"B"}},
		models.Table{TableID: "B", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true, CombinableWith: []string{"A"}},
		models.Table{TableID: "C", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
	)

	result := recommend(registry, 7)
	require.True(t, result.Success)
	assert.Empty(t, singleIDs(result))
	assert.Equal(t, [][]string{{"A", "B"}}, combos(result), "C is not forced into the A+B pairing")
}

func TestExplicitListsReferencingThirdTableYieldNothing(t *testing.T) {
	// X and Y each only combine with Z, which is not registered.
	registry := registryOf(
		models.Table{TableID: "X", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true, CombinableWith: []string{"Z"}},
		models.Table{TableID: "Y", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true, CombinableWith: []string{"Z"}},
	)

	result := recommend(registry, 6)
	assert.False(t, result.Success)
	assert.Empty(t, result.Recommendations)
}

func TestWildcardOverriddenByExplicitList(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "open", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
		models.Table{TableID: "picky", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true, CombinableWith: []string{"elsewhere"}},
	)

	// open's wildcard would allow the pairing; picky's explicit list
	// forbids it.
	result := recommend(registry, 7)
	assert.False(t, result.Success)
	assert.Empty(t, result.Recommendations)
}

func TestMaxCombinationSizeOneNeverCombines(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "solo", MinCapacity: 2, MaxCapacity: 6, IsCombinable: true, MaxCombinationSize: 1},
		models.Table{TableID: "D", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
		models.Table{TableID: "E", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
	)

	result := recommend(registry, 7)
	require.True(t, result.Success)
	for _, c := range combos(result) {
		assert.NotContains(t, c, "solo")
	}
	assert.Contains(t, combos(result), []string{"D", "E"})
}

func TestNonCombinableTablesExcludedFromCombinations(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "fixed", MinCapacity: 2, MaxCapacity: 6, IsCombinable: false},
		models.Table{TableID: "F", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
	)

	result := recommend(registry, 8)
	assert.False(t, result.Success, "one combinable table cannot form a pair")
}

func TestSupersetsOfFeasibleSubsetsArePruned(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "G", MinCapacity: 2, MaxCapacity: 6, IsCombinable: true},
		models.Table{TableID: "H", MinCapacity: 2, MaxCapacity: 6, IsCombinable: true},
		models.Table{TableID: "I", MinCapacity: 2, MaxCapacity: 6, IsCombinable: true},
	)

	result := recommend(registry, 10)
	require.True(t, result.Success)
	for _, c := range combos(result) {
		assert.Len(t, c, 2, "a feasible pair suppresses the three-table superset")
	}
	assert.Len(t, combos(result), 3)
}

func TestLargerCombinationEmittedWhenPairsInfeasible(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "J", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
		models.Table{TableID: "K", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
		models.Table{TableID: "L", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
	)

	result := recommend(registry, 10)
	require.True(t, result.Success)
	assert.Equal(t, [][]string{{"J", "K", "L"}}, combos(result))
}

func TestCombinationPassRunsEvenWhenSinglesFit(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "banquet", MinCapacity: 2, MaxCapacity: 12, IsCombinable: false},
		models.Table{TableID: "M", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
		models.Table{TableID: "N", MinCapacity: 2, MaxCapacity: 4, IsCombinable: true},
	)

	result := recommend(registry, 7)
	require.True(t, result.Success)
	assert.Equal(t, []string{"banquet"}, singleIDs(result))
	assert.Equal(t, [][]string{{"M", "N"}}, combos(result), "callers may weigh singles against combinations")
}

func TestNoFitIsANegativeResultNotAnError(t *testing.T) {
	registry := registryOf(
		models.Table{TableID: "deuce", MinCapacity: 2, MaxCapacity: 4},
	)

	result := recommend(registry, 30)
	assert.False(t, result.Success)
	assert.Empty(t, result.Recommendations)
}
