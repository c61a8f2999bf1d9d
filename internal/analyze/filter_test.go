package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacmetrics-engine/internal/analyze"
	"vacmetrics-engine/internal/domain"
)

func titled(titles ...string) []domain.Vacancy {
	out := make([]domain.Vacancy, 0, len(titles))
	for _, title := range titles {
		out = append(out, domain.Vacancy{Title: title, City: "Москва"})
	}
	return out
}

func TestFilterCaseInsensitiveCyrillic(t *testing.T) {
	vs := titled("УЧИТЕЛЬ математики", "Водитель")

	out, err := analyze.FilterByKeywords(vs, []string{"учитель"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "УЧИТЕЛЬ математики", out[0].Title)
}

func TestFilterAnyKeywordMatches(t *testing.T) {
	vs := titled("Продавец-консультант", "Старший учитель", "Водитель")

	out, err := analyze.FilterByKeywords(vs, []string{"Продавец", "учитель"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFilterNoMatchesIsEmpty(t *testing.T) {
	out, err := analyze.FilterByKeywords(titled("Водитель"), []string{"бухгалтер"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterNoKeywordsErrors(t *testing.T) {
	_, err := analyze.FilterByKeywords(titled("Водитель"), []string{" ", ""})
	assert.Error(t, err)
}
