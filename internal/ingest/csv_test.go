package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacmetrics-engine/internal/ingest"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vacancies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const header = "name,area_name,published_at,salary_from,salary_to,salary_currency,key_skills\n"

func TestLoadVacancies(t *testing.T) {
	path := writeCSV(t, header+
		"Продавец-консультант,Москва,2023-01-01,50000,,RUR,продажи\n"+
		"Developer,Казань,2022-06-15T10:30:00+0300,1000,2000,USD,\"Go, SQL\"\n")

	vs, err := ingest.LoadVacancies(path)
	require.NoError(t, err)
	require.Len(t, vs, 2)

	assert.Equal(t, "Продавец-консультант", vs[0].Title)
	assert.Equal(t, "Москва", vs[0].City)
	assert.Equal(t, 2023, vs[0].PublishedAt.Year())
	assert.True(t, vs[0].SalaryFrom.Valid)
	assert.Equal(t, "50000", vs[0].SalaryFrom.Decimal.String())
	assert.False(t, vs[0].SalaryTo.Valid)
	assert.Equal(t, "RUR", vs[0].Currency)

	assert.Equal(t, "USD", vs[1].Currency)
	assert.Equal(t, 2022, vs[1].PublishedAt.Year())
	assert.Equal(t, "Go, SQL", vs[1].KeySkills)
}

func TestLoadVacanciesMissingFile(t *testing.T) {
	_, err := ingest.LoadVacancies(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadVacanciesMissingColumn(t *testing.T) {
	path := writeCSV(t, "name,area_name,published_at\nx,y,2023-01-01\n")
	_, err := ingest.LoadVacancies(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary_from")
}

func TestLoadVacanciesMalformedRow(t *testing.T) {
	// wrong field count aborts the whole load
	path := writeCSV(t, header+"only,three,fields\n")
	_, err := ingest.LoadVacancies(path)
	assert.Error(t, err)
}

func TestLoadVacanciesBadDate(t *testing.T) {
	path := writeCSV(t, header+"x,y,not-a-date,1,2,RUR,\n")
	_, err := ingest.LoadVacancies(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "published_at")
}

func TestLoadVacanciesBadSalary(t *testing.T) {
	path := writeCSV(t, header+"x,y,2023-01-01,abc,2,RUR,\n")
	_, err := ingest.LoadVacancies(path)
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Москва Сити", ingest.CleanText("  Москва  Сити "))
	assert.Equal(t, "", ingest.CleanText("   "))
}
