package lexical

import (
	"math"
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// Threshold is the fixed per-field fuzziness cutoff. Field matches with a
	// raw distance above it do not contribute to an entry's score. Tuned to
	// bound result-set size; not user-configurable.
	Threshold = 0.2

	// Field weights. A heavier field maps the same raw distance to a smaller
	// weighted distance, so name hits rank above equal-quality tag hits.
	weightName     = 4.0
	weightTag      = 2.0
	weightCategory = 1.0
	maxWeight      = weightName

	prefixPenalty    = 0.1
	substringPenalty = 0.1
)

// fieldDistance scores how well query matches a single text field.
// Both arguments must already be lowercased. The result is in [0,1]:
// 0 for an exact match, small for prefix and substring matches, and a
// normalized edit distance otherwise.
func fieldDistance(text, query string) float64 {
	if text == query {
		return 0
	}
	if text == "" || query == "" {
		return 1
	}

	if strings.HasPrefix(text, query) {
		return prefixPenalty * (1 - float64(len(query))/float64(len(text)))
	}

	if idx := strings.Index(text, query); idx >= 0 {
		// Later occurrences are slightly worse than earlier ones.
		return substringPenalty + substringPenalty*float64(idx)/float64(len(text))
	}

	// WagnerFischer with substitution cost 2 bounds the edit distance by
	// len(text)+len(query), which normalizes cleanly to [0,1].
	edit := smetrics.WagnerFischer(text, query, 1, 1, 2)
	return float64(edit) / float64(len(text)+len(query))
}

// weighted maps a raw field distance to its weighted form. Distances are in
// [0,1], so raising to weight/maxWeight keeps heavy-field distances intact
// and inflates light-field distances toward 1.
func weighted(distance, weight float64) float64 {
	if distance == 0 {
		return 0
	}
	return math.Pow(distance, weight/maxWeight)
}
