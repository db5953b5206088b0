package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/cloudstroke/internal/models"
)

// NoMatch is returned by Classify and Match when there are no templates.
const NoMatch = -1

// step between the starting offsets tried for each template.
var step = int(math.Floor(math.Sqrt(n)))

// cloudDistance greedily pairs every point of a, visited cyclically from start,
// with its nearest unmatched point of b. Earlier pairings weigh more.
func cloudDistance(a, b *[n]models.Point, start int) float32 {
	var matched [n]bool
	sum := float32(0)
	for k := range n {
		i := (start + k) % n

		idx := -1
		minDist := float32(math.MaxFloat32)
		for j := range b {
			if matched[j] {
				continue
			}
			if d := Distance(a[i], b[j]); d < minDist {
				minDist = d
				idx = j
			}
		}
		if idx < 0 {
			// Only reachable with non-finite coordinates.
			idx = firstUnmatched(&matched)
			minDist = Distance(a[i], b[idx])
		}

		matched[idx] = true
		weight := 1 - float32(k)/n
		sum += weight * minDist
	}
	return sum
}

func firstUnmatched(matched *[n]bool) int {
	for j, m := range matched {
		if !m {
			return j
		}
	}
	return 0
}

// symmetricDistance is the best distance between two clouds over the sampled
// starting offsets, trying the greedy pairing in both directions.
func symmetricDistance(a, b *models.Gesture) float32 {
	best := float32(math.MaxFloat32)
	for start := 0; start < n; start += step {
		best = min(best,
			cloudDistance(&a.Points, &b.Points, start),
			cloudDistance(&b.Points, &a.Points, start))
	}
	return best
}

// Match returns the index of the template closest to query together with its
// distance. The index is NoMatch when templates is empty. Ties go to the
// earlier template.
func Match(query models.Gesture, templates []models.Gesture) (bestMatch int, bestDistance float32) {
	bestMatch = NoMatch
	bestDistance = float32(math.MaxFloat32)
	for i := range templates {
		d := symmetricDistance(&query, &templates[i])
		if i == 0 || d < bestDistance {
			bestDistance = d
			bestMatch = i
		}
	}
	return bestMatch, bestDistance
}

// Classify returns the index of the template closest to query, or NoMatch if
// there are no templates.
func Classify(query models.Gesture, templates []models.Gesture) int {
	bestMatch, _ := Match(query, templates)
	return bestMatch
}
