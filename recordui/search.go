package recordui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// rankVisible returns the indexes of rows matching query, best match
// first, stable within equal scores. An empty query keeps every row in
// pushed order. Substring hits always match; otherwise the query must sit
// within edit distance of some word of the label, so "Anie" still finds
// "Annie Mouse".
func rankVisible(rows Records, query string) []int {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		out := make([]int, len(rows))
		for i := range rows {
			out[i] = i
		}
		return out
	}
	type scored struct {
		idx   int
		score int
	}
	matches := make([]scored, 0, len(rows))
	for i, r := range rows {
		if s, ok := matchScore(strings.ToUpper(r.Label()), q); ok {
			matches = append(matches, scored{idx: i, score: s})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score < matches[b].score
	})
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.idx
	}
	return out
}

func matchScore(label, q string) (int, bool) {
	if strings.Contains(label, q) {
		return 0, true
	}
	best := -1
	for _, word := range strings.Fields(label) {
		d := levenshtein.ComputeDistance(word, q)
		if best < 0 || d < best {
			best = d
		}
	}
	limit := 1 + len(q)/3
	if best >= 0 && best <= limit {
		return best, true
	}
	return 0, false
}
