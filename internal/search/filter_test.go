package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

func newTestFilterEngine() *FilterEngine {
	return NewFilterEngine(NewContentAnalyzer())
}

func Test_Apply_WhenNoFilters_ShouldReturnAllJobs(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{{ID: "a"}, {ID: "b"}}

	assert.Equal(t, jobs, engine.Apply(jobs, Filters{}))
}

func Test_Apply_CityFilter_MatchesAliasSpellings(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", City: "Hà Nội"},
		{ID: "b", City: "Hồ Chí Minh"},
	}

	filtered := engine.Apply(jobs, Filters{Cities: []string{"Hanoi"}})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func Test_Apply_SalaryFilter_RejectsNegotiableWhenMinimumSet(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Salary: models.SalaryNegotiable},
		{ID: "b", Salary: "15 triệu"},
	}

	filtered := engine.Apply(jobs, Filters{SalaryMin: 10_000_000})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].ID)
}

func Test_Apply_SalaryFilter_RespectsUpperBound(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Salary: "15 triệu"},
		{ID: "b", Salary: "40 triệu"},
	}

	filtered := engine.Apply(jobs, Filters{SalaryMin: 10_000_000, SalaryMax: 20_000_000})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func Test_Apply_TypeFilter_WidensWithDetectedRemoteMode(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Type: "Full-time", Description: "work from home toàn thời gian"},
		{ID: "b", Type: "Full-time", Description: "làm tại văn phòng"},
	}

	filtered := engine.Apply(jobs, Filters{Types: []string{"remote"}})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func Test_Apply_SkillFilter_MatchesDerivedSkills(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Requirements: "Thành thạo React và NodeJS"},
		{ID: "b", Requirements: "Thành thạo Laravel"},
	}

	filtered := engine.Apply(jobs, Filters{Skills: []string{"JavaScript"}})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func Test_Apply_RemoteWorkFilter_RequiresExactMode(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Description: "remote hoàn toàn"},
		{ID: "b", Description: "remote hoặc tại văn phòng"},
	}

	filtered := engine.Apply(jobs, Filters{RemoteWork: HybridWork})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "b", filtered[0].ID)
}

func Test_Apply_ExperienceFilter_ChecksDerivedLevelAndContent(t *testing.T) {
	engine := newTestFilterEngine()
	jobs := []models.Job{
		{ID: "a", Title: "Senior Backend Engineer"},
		{ID: "b", Title: "Thực tập sinh marketing"},
	}

	filtered := engine.Apply(jobs, Filters{Experience: []string{"senior"}})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func Test_ExtractSalary(t *testing.T) {
	cases := []struct {
		text     string
		expected int64
	}{
		{"15 triệu", 15_000_000},
		{"15-20 triệu", 20_000_000},
		{"10tr", 10_000_000},
		{"12,000,000 VND", 12_000_000},
		{models.SalaryNegotiable, 0},
		{"", 0},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractSalary(tc.text))
		})
	}
}
