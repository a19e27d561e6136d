package strength

import (
	"math"
	"unicode/utf8"
)

// EstimateEntropy returns log2(unique^length), where unique is the number of
// distinct characters in s. It is 0 when s has at most one distinct character.
func EstimateEntropy(s string) float64 {
	unique := uniqueChars(s)
	if unique <= 1 {
		return 0
	}
	// n*log2(u) keeps long passwords finite where u^n would overflow.
	return float64(utf8.RuneCountInString(s)) * math.Log2(float64(unique))
}

func uniqueChars(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
