package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vacancy is one row of the input file after parsing.
// SalaryFrom/SalaryTo are half-range bounds; either may be absent.
type Vacancy struct {
	Title       string
	City        string
	PublishedAt time.Time
	SalaryFrom  decimal.NullDecimal
	SalaryTo    decimal.NullDecimal
	Currency    string // ISO-ish code as published (RUR, USD, ...)
	KeySkills   string // raw delimiter-separated list
}

// Record is a vacancy that survived keyword filtering, enriched with
// the derived fields the analysis works on.
type Record struct {
	Vacancy
	Year   int
	Salary decimal.NullDecimal // converted to the reference currency
}
