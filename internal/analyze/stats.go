package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"vacmetrics-engine/internal/domain"
)

// Summary is what the reporter prints: row count, year range, and the
// mean/median of the converted salaries.
type Summary struct {
	Vacancies int
	MinYear   int
	MaxYear   int
	Mean      decimal.Decimal
	Median    decimal.Decimal
}

// Summarize computes the run summary. Records without a salary value
// are counted but excluded from mean/median.
func Summarize(recs []domain.Record) Summary {
	s := Summary{Vacancies: len(recs)}
	if len(recs) == 0 {
		return s
	}

	s.MinYear, s.MaxYear = recs[0].Year, recs[0].Year
	var salaries []decimal.Decimal
	for _, r := range recs {
		if r.Year < s.MinYear {
			s.MinYear = r.Year
		}
		if r.Year > s.MaxYear {
			s.MaxYear = r.Year
		}
		if r.Salary.Valid {
			salaries = append(salaries, r.Salary.Decimal)
		}
	}
	if len(salaries) == 0 {
		return s
	}

	s.Mean = decimal.Avg(salaries[0], salaries[1:]...)
	s.Median = median(salaries)
	return s
}

func median(xs []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(two)
}
