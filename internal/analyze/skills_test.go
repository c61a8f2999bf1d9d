package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacmetrics-engine/internal/analyze"
	"vacmetrics-engine/internal/domain"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t,
		[]string{"python", "java", "sql", "git"},
		analyze.SplitSkills("Python, Java и SQL/Git"))
}

func TestSplitSkillsEmpty(t *testing.T) {
	assert.Empty(t, analyze.SplitSkills(""))
	assert.Empty(t, analyze.SplitSkills("  ,  / "))
}

func TestTopSkills(t *testing.T) {
	recs := []domain.Record{
		{Vacancy: domain.Vacancy{KeySkills: "Go, SQL"}},
		{Vacancy: domain.Vacancy{KeySkills: "go/Docker"}},
		{Vacancy: domain.Vacancy{KeySkills: "GO"}},
	}

	top := analyze.TopSkills(recs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, analyze.Count{Name: "go", N: 3}, top[0])
	// tie between docker and sql resolves alphabetically
	assert.Equal(t, analyze.Count{Name: "docker", N: 1}, top[1])
}
