package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"vacmetrics-engine/internal/domain"
)

// FilterByKeywords keeps vacancies whose title matches any keyword,
// case-insensitively. Keywords are treated as regex fragments joined
// into one alternation, so plain words behave as substring matches.
func FilterByKeywords(vs []domain.Vacancy, keywords []string) ([]domain.Vacancy, error) {
	var parts []string
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		parts = append(parts, k)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no keywords configured")
	}

	re, err := regexp.Compile("(?i)" + strings.Join(parts, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile keyword pattern: %w", err)
	}

	var out []domain.Vacancy
	for _, v := range vs {
		if re.MatchString(v.Title) {
			out = append(out, v)
		}
	}
	return out, nil
}
