package ingest

import "vacmetrics-engine/internal/domain"

// CleanSalaries fills each missing half-range bound from the other one,
// then drops rows where both bounds are still absent and rows missing
// the title or city. One pass; no row depends on any other row.
func CleanSalaries(vs []domain.Vacancy) []domain.Vacancy {
	out := make([]domain.Vacancy, 0, len(vs))
	for _, v := range vs {
		if !v.SalaryFrom.Valid {
			v.SalaryFrom = v.SalaryTo
		}
		if !v.SalaryTo.Valid {
			v.SalaryTo = v.SalaryFrom
		}
		if !v.SalaryFrom.Valid && !v.SalaryTo.Valid {
			continue
		}
		if v.Title == "" || v.City == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
