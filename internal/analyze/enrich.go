package analyze

import (
	"github.com/shopspring/decimal"

	"vacmetrics-engine/internal/domain"
	"vacmetrics-engine/internal/rates"
)

var two = decimal.NewFromInt(2)

// ConvertedSalary averages the two bounds and converts into the
// reference currency. Absent when both bounds are absent. Pure function
// of the row and the table; the table is fetched once per run, never
// here.
func ConvertedSalary(v domain.Vacancy, t rates.Table) decimal.NullDecimal {
	if !v.SalaryFrom.Valid && !v.SalaryTo.Valid {
		return decimal.NullDecimal{}
	}
	from, to := v.SalaryFrom, v.SalaryTo
	if !from.Valid {
		from = to
	}
	if !to.Valid {
		to = from
	}
	avg := from.Decimal.Add(to.Decimal).Div(two)
	return decimal.NullDecimal{
		Decimal: avg.Mul(t.Multiplier(v.Currency)),
		Valid:   true,
	}
}

// Enrich derives the year and reference-currency salary for each
// filtered vacancy.
func Enrich(vs []domain.Vacancy, t rates.Table) []domain.Record {
	out := make([]domain.Record, 0, len(vs))
	for _, v := range vs {
		out = append(out, domain.Record{
			Vacancy: v,
			Year:    v.PublishedAt.Year(),
			Salary:  ConvertedSalary(v, t),
		})
	}
	return out
}
