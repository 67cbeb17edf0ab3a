// Package metrics computes set-overlap metrics between binary mask pairs
// and reconciles tracked-particle identities against mask membership.
//
// All functions taking two grids require them to share a shape; the
// evaluator normalizes every mask to the canonical size before metrics run.
package metrics

import (
	"sort"

	"mask-evaluator/internal/mask"
	"mask-evaluator/internal/track"
)

// IntersectionCount returns |a∩b| in pixels.
func IntersectionCount(a, b *mask.Grid) int {
	n := 0
	for i := range a.Pix {
		if a.Pix[i] != 0 && b.Pix[i] != 0 {
			n++
		}
	}
	return n
}

// FalsePositives returns the number of pixels flagged by the predictor but
// absent from ground truth: |a| − |a∩b|. No clamp is applied; the value
// cannot go negative since the intersection is a subset of a.
func FalsePositives(a, b *mask.Grid) int {
	return a.Sum() - IntersectionCount(a, b)
}

// OverlapRatio returns the Jaccard index |a∩b| / |a∪b|. Two empty masks
// agree perfectly: the ratio is 1.0 when the union is empty.
func OverlapRatio(a, b *mask.Grid) float64 {
	inter := IntersectionCount(a, b)
	union := a.Sum() + b.Sum() - inter
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}

// SimilarityCoefficient returns the Dice coefficient 2|a∩b| / (|a|+|b|),
// 1.0 when both masks are empty.
func SimilarityCoefficient(a, b *mask.Grid) float64 {
	inter := IntersectionCount(a, b)
	denom := a.Sum() + b.Sum()
	if denom == 0 {
		return 1.0
	}
	return 2 * float64(inter) / float64(denom)
}

// TrackIDsInMask returns the identifiers of rows whose derived pixel
// coordinate lands on foreground. Membership is exact-pixel: no
// neighborhood tolerance, and out-of-bounds coordinates count as
// background.
func TrackIDsInMask(g *mask.Grid, rows []track.Row) map[int]struct{} {
	ids := make(map[int]struct{})
	for _, r := range rows {
		if g.At(r.Px.X, r.Px.Y) != 0 {
			ids[r.TrackID] = struct{}{}
		}
	}
	return ids
}

// Difference returns the identifiers present in a but not in b, sorted
// ascending.
func Difference(a, b map[int]struct{}) []int {
	ids := make([]int, 0, len(a))
	for id := range a {
		if _, ok := b[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
