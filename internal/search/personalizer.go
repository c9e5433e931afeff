package search

import (
	"strings"

	"github.com/samber/lo"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

const (
	personalizationBase = 50
	personalizationMax  = 100
)

// Personalize scores how well a job fits a user-interest profile,
// independent of any query. The result lands in [0, 100]; blending it
// with the relevance score is the orchestrator's call, not ours.
func Personalize(job models.Job, profile models.UserProfile) int {
	score := personalizationBase

	jobText := strings.ToLower(job.Title + " " + job.Description + " " + job.Requirements)

	for interest, weight := range profile.Interests {
		if interest == "" {
			continue
		}
		if strings.Contains(jobText, strings.ToLower(interest)) {
			score += min(weight*2, 20)
		}
	}

	if lo.Contains(profile.PreferredTypes, job.Type) {
		score += 15
	}
	if lo.Contains(profile.PreferredLocations, job.City) {
		score += 10
	}
	if lo.Contains(profile.PreferredIndustries, job.Field) {
		score += 10
	}

	for _, recent := range profile.RecentSearches {
		if recent == "" {
			continue
		}
		if strings.Contains(jobText, strings.ToLower(recent)) {
			score += 8
		}
	}

	if score > personalizationMax {
		return personalizationMax
	}
	if score < 0 {
		return 0
	}
	return score
}
