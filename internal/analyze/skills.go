package analyze

import (
	"regexp"
	"sort"
	"strings"

	"vacmetrics-engine/internal/domain"
	"vacmetrics-engine/internal/ingest"
)

// Skill lists separate entries with commas, the conjunction "и", or
// slashes, each optionally surrounded by whitespace.
var skillSep = regexp.MustCompile(`,\s*|\s*и\s*|\s*/\s*`)

// SplitSkills lower-cases the raw field, splits it into individual
// skills and trims each one. Empty fragments are dropped.
func SplitSkills(raw string) []string {
	raw = strings.ToLower(raw)
	var out []string
	for _, s := range skillSep.Split(raw, -1) {
		s = ingest.CleanText(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Count is a (name, occurrences) pair used by the top-N reports.
type Count struct {
	Name string
	N    int
}

// TopSkills flattens every record's skill list and returns the n most
// frequent skills, most frequent first. Ties order alphabetically so
// the output is stable.
func TopSkills(recs []domain.Record, n int) []Count {
	freq := map[string]int{}
	for _, r := range recs {
		for _, s := range SplitSkills(r.KeySkills) {
			freq[s]++
		}
	}
	return topN(freq, n)
}

func topN(freq map[string]int, n int) []Count {
	counts := make([]Count, 0, len(freq))
	for name, c := range freq {
		counts = append(counts, Count{Name: name, N: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Name < counts[j].Name
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
