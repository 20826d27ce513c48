// Package suggest finds near misses for "Did you mean" hints on failed
// command lookups. Unlike the substring matcher used for selection, this is
// typo detection: edit distance with a mild preference for shared prefixes.
package suggest

import (
	"sort"
	"strings"
)

// minInputLength guards against suggesting for inputs too short to carry
// signal.
const minInputLength = 2

// candidateMatch is one scored near miss.
type candidateMatch struct {
	value    string
	distance int
	score    float64
}

// FindBest returns the closest candidate within maxDistance edits of the
// input, or "" when nothing qualifies. Exact matches are not near misses and
// are skipped.
func FindBest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}

	input = strings.ToLower(input)
	var matches []candidateMatch

	for _, candidate := range candidates {
		lowered := strings.ToLower(candidate)
		if lowered == input {
			continue
		}

		distance := editDistance(input, lowered, maxDistance)
		if distance > maxDistance {
			continue
		}
		matches = append(matches, candidateMatch{
			value:    candidate,
			distance: distance,
			score:    scoreMatch(input, lowered, distance),
		})
	}

	if len(matches) == 0 {
		return ""
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].score > matches[j].score
	})
	return matches[0].value
}

// scoreMatch rates a near miss between 0 and 1. Edit distance dominates;
// a shared prefix earns a bonus so "hel" prefers "help" over "heal".
func scoreMatch(input, candidate string, distance int) float64 {
	longest := len(input)
	if len(candidate) > longest {
		longest = len(candidate)
	}
	if longest == 0 {
		return 1.0
	}

	score := 1.0 - float64(distance)/float64(longest)

	prefix := 0
	for prefix < len(input) && prefix < len(candidate) && input[prefix] == candidate[prefix] {
		prefix++
	}
	if prefix > 0 {
		shortest := len(input)
		if len(candidate) < shortest {
			shortest = len(candidate)
		}
		score += float64(prefix) / float64(shortest) * 0.3
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// editDistance computes levenshtein distance with two rows instead of a full
// matrix, bailing out with maxDistance+1 as soon as the result is known to
// exceed the cap.
func editDistance(a, b string, maxDistance int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxDistance {
		return maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			best := current[j-1] + 1
			if previous[j]+1 < best {
				best = previous[j] + 1
			}
			if previous[j-1]+cost < best {
				best = previous[j-1] + cost
			}
			current[j] = best

			if best < rowMin {
				rowMin = best
			}
		}

		if rowMin > maxDistance {
			return maxDistance + 1
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}
