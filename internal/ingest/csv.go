package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"vacmetrics-engine/internal/domain"
)

// Required input columns. Extra columns are ignored.
const (
	colTitle     = "name"
	colCity      = "area_name"
	colPublished = "published_at"
	colFrom      = "salary_from"
	colTo        = "salary_to"
	colCurrency  = "salary_currency"
	colSkills    = "key_skills"
)

// dateLayouts covers the export formats seen in hh.ru dumps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadVacancies reads the whole file into memory. Any failure (missing
// file, missing column, malformed row or date) aborts the load; there
// are no partial results.
func LoadVacancies(path string) ([]domain.Vacancy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vacancies file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range []string{colTitle, colCity, colPublished, colFrom, colTo, colCurrency, colSkills} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var out []domain.Vacancy
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		v := domain.Vacancy{
			Title:     CleanText(rec[idx[colTitle]]),
			City:      CleanText(rec[idx[colCity]]),
			Currency:  strings.ToUpper(strings.TrimSpace(rec[idx[colCurrency]])),
			KeySkills: rec[idx[colSkills]],
		}

		v.PublishedAt, err = parseDate(rec[idx[colPublished]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		v.SalaryFrom, err = parseSalary(rec[idx[colFrom]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad salary_from: %w", line, err)
		}
		v.SalaryTo, err = parseSalary(rec[idx[colTo]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad salary_to: %w", line, err)
		}

		out = append(out, v)
	}
	return out, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable published_at %q", raw)
}

// parseSalary treats empty cells (and pandas-style NaN markers) as absent.
func parseSalary(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
