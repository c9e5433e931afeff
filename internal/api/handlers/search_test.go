package handlers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/search"
)

func Test_ToJobResponse_FillsDisplayDefaults(t *testing.T) {
	response := toJobResponse(search.ScoredJob{Job: models.Job{ID: "job-1", Title: "Kế toán"}})

	assert.Equal(t, "Không có mô tả", response.Description)
	assert.Equal(t, models.SalaryNegotiable, response.Salary)
	assert.Equal(t, "Không xác định", response.City)
	assert.Equal(t, "Full-time", response.Type)
	assert.Equal(t, "Công nghệ thông tin", response.Field)
	assert.Equal(t, "Công ty", response.CompanyName)
}

func Test_ToJobResponse_KeepsProvidedValues(t *testing.T) {
	job := models.Job{
		ID:          "job-2",
		Title:       "Đầu bếp",
		Description: "Nấu món Âu",
		Salary:      "15 triệu",
		City:        "Đà Nẵng",
		Type:        "Part-time",
		Field:       "Nhà hàng",
		CompanyName: "Nhà hàng Biển Xanh",
	}

	response := toJobResponse(search.ScoredJob{Job: job, RelevanceScore: 180, MatchTier: search.MatchTierExact})

	assert.Equal(t, "Nấu món Âu", response.Description)
	assert.Equal(t, "15 triệu", response.Salary)
	assert.Equal(t, "Đà Nẵng", response.City)
	assert.Equal(t, "Part-time", response.Type)
	assert.Equal(t, 180, response.RelevanceScore)
	assert.Equal(t, search.MatchTierExact, response.MatchTier)
}

func Test_ToJobResponse_TruncatesDescriptionAtRuneBoundary(t *testing.T) {
	// The 200th character is multi-byte; a byte cut would split it.
	description := strings.Repeat("a", 199) + "ệ" + strings.Repeat("b", 50)

	response := toJobResponse(search.ScoredJob{Job: models.Job{Description: description}})

	assert.True(t, utf8.ValidString(response.Description))
	assert.True(t, strings.HasSuffix(response.Description, "ệ..."))
	assert.Equal(t, 203, len([]rune(response.Description)))
}
