package optimizer

import (
	"sort"
	"strings"

	"seatwise/models"
)

// recommend runs both assignment passes over the registry. The single-table
// pass excludes oversized tables as firmly as undersized ones; the
// combination pass always runs so callers can weigh a snug combination
// against a roomy single.
func recommend(registry map[string]models.Table, partySize int) models.RecommendationResult {
	singles := singleTablePass(registry, partySize)
	combos := combinationPass(registry, partySize)

	recs := append(singles, combos...)
	return models.RecommendationResult{
		Success:         len(recs) > 0,
		Recommendations: recs,
	}
}

// singleTablePass emits every table whose capacity range brackets the
// party, ranked snuggest fit first.
func singleTablePass(registry map[string]models.Table, partySize int) []models.TableRecommendation {
	var fits []models.Table
	for _, t := range registry {
		if t.MinCapacity <= partySize && partySize <= t.MaxCapacity {
			fits = append(fits, t)
		}
	}
	sort.Slice(fits, func(i, j int) bool {
		if fits[i].MaxCapacity != fits[j].MaxCapacity {
			return fits[i].MaxCapacity < fits[j].MaxCapacity
		}
		return fits[i].TableID < fits[j].TableID
	})

	var recs []models.TableRecommendation
	for _, t := range fits {
		recs = append(recs, models.TableRecommendation{
			TableID:       t.TableID,
			TotalCapacity: t.MaxCapacity,
		})
	}
	return recs
}

// combinationPass enumerates subsets of combinable tables in increasing
// size. A subset is valid when every member tolerates the subset size and
// every pair is mutually adjacent; it is feasible when the summed max
// capacities can seat the party. Supersets of an already-feasible subset
// are pruned.
func combinationPass(registry map[string]models.Table, partySize int) []models.TableRecommendation {
	var candidates []models.Table
	for _, t := range registry {
		if t.IsCombinable {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) < 2 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].TableID < candidates[j].TableID
	})

	// The largest subset worth trying is bounded by the most tolerant
	// member; a zero limit means unlimited.
	maxSize := 0
	for _, t := range candidates {
		limit := t.MaxCombinationSize
		if limit == 0 || limit > len(candidates) {
			limit = len(candidates)
		}
		if limit > maxSize {
			maxSize = limit
		}
	}

	type combo struct {
		ids      []string
		capacity int
	}
	var feasible []combo

	containsFeasible := func(ids []string) bool {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		for _, f := range feasible {
			all := true
			for _, id := range f.ids {
				if !set[id] {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
		return false
	}

	var subset []models.Table
	var walk func(start, size int)
	walk = func(start, size int) {
		if len(subset) == size {
			ids := make([]string, len(subset))
			capacity := 0
			for i, t := range subset {
				ids[i] = t.TableID
				capacity += t.MaxCapacity
			}
			if capacity >= partySize && !containsFeasible(ids) {
				feasible = append(feasible, combo{ids: ids, capacity: capacity})
			}
			return
		}
		for i := start; i < len(candidates); i++ {
			next := candidates[i]
			if next.MaxCombinationSize != 0 && next.MaxCombinationSize < size {
				continue
			}
			adjacent := true
			for _, member := range subset {
				if !mutuallyAdjacent(member, next) {
					adjacent = false
					break
				}
			}
			if !adjacent {
				continue
			}
			subset = append(subset, next)
			walk(i+1, size)
			subset = subset[:len(subset)-1]
		}
	}
	for size := 2; size <= maxSize; size++ {
		walk(0, size)
	}

	sort.Slice(feasible, func(i, j int) bool {
		if len(feasible[i].ids) != len(feasible[j].ids) {
			return len(feasible[i].ids) < len(feasible[j].ids)
		}
		if feasible[i].capacity != feasible[j].capacity {
			return feasible[i].capacity < feasible[j].capacity
		}
		return strings.Join(feasible[i].ids, ",") < strings.Join(feasible[j].ids, ",")
	})

	var recs []models.TableRecommendation
	for _, c := range feasible {
		recs = append(recs, models.TableRecommendation{
			CombinedTableIDs:    c.ids,
			RequiresCombination: true,
			TotalCapacity:       c.capacity,
		})
	}
	return recs
}

// mutuallyAdjacent applies the wildcard rule: an empty combinable-with
// list permits any partner, but the other side's explicit list can still
// forbid the pairing.
func mutuallyAdjacent(a, b models.Table) bool {
	return a.AllowsPartner(b.TableID) && b.AllowsPartner(a.TableID)
}
