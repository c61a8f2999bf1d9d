package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"vacmetrics-engine/internal/domain"
)

// Years returns the distinct publication years present, ascending.
func Years(recs []domain.Record) []int {
	seen := map[int]bool{}
	var out []int
	for _, r := range recs {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Ints(out)
	return out
}

// TopCitiesForYear counts that year's vacancies per city and returns
// the n busiest cities, biggest first.
func TopCitiesForYear(recs []domain.Record, year, n int) []Count {
	freq := map[string]int{}
	for _, r := range recs {
		if r.Year == year {
			freq[r.City]++
		}
	}
	return topN(freq, n)
}

// YearSalary holds the per-year salary aggregates for the trend chart.
type YearSalary struct {
	Year   int
	Mean   decimal.Decimal
	Median decimal.Decimal
}

// SalaryByYear groups the converted salaries by year, ascending.
// Records without a salary value are skipped; years where every record
// lacks one are omitted.
func SalaryByYear(recs []domain.Record) []YearSalary {
	byYear := map[int][]decimal.Decimal{}
	for _, r := range recs {
		if r.Salary.Valid {
			byYear[r.Year] = append(byYear[r.Year], r.Salary.Decimal)
		}
	}

	out := make([]YearSalary, 0, len(byYear))
	for year, xs := range byYear {
		out = append(out, YearSalary{
			Year:   year,
			Mean:   decimal.Avg(xs[0], xs[1:]...),
			Median: median(xs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
