package search

import (
	"strings"
	"time"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

// ExactTierBonus is added to every exact-tier sort key, so exact matches
// always outrank auxiliary ones no matter the raw scores.
const ExactTierBonus = 100

// AuxiliaryScoreThreshold is the minimum auxiliary score a job needs to
// enter the fallback tier; anything below is noise.
const AuxiliaryScoreThreshold = 20

// Scorer computes relevance for a (job, terms) pair. Both scoring
// functions are pure and never fail, whatever the job's fields contain.
type Scorer struct {
	analyzer Analyzer
	now      func() time.Time
}

func NewScorer(analyzer Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer, now: time.Now}
}

// ExactScore weighs direct substring hits of the query terms against each
// job field, on normalized text and again on diacritic-folded text (folded
// hits score slightly lower), plus recency and completeness bonuses.
func (s *Scorer) ExactScore(job models.Job, terms []string) int {
	score := 0

	title := Normalize(job.Title)
	description := Normalize(job.Description)
	requirements := Normalize(job.Requirements)
	city := Normalize(job.City)
	jobType := Normalize(job.Type)
	field := Normalize(job.Field)
	salary := Normalize(job.Salary)

	titleFolded := FoldDiacritics(job.Title)
	descriptionFolded := FoldDiacritics(job.Description)
	requirementsFolded := FoldDiacritics(job.Requirements)

	content := title + " " + description + " " + requirements + " " +
		city + " " + jobType + " " + field + " " + salary
	contentFolded := FoldDiacritics(content)

	for _, term := range terms {
		termFolded := FoldDiacritics(term)

		if strings.Contains(title, term) {
			score += 50
		}
		if strings.Contains(description, term) {
			score += 30
		}
		if strings.Contains(requirements, term) {
			score += 40
		}

		if strings.Contains(titleFolded, termFolded) {
			score += 45
		}
		if strings.Contains(descriptionFolded, termFolded) {
			score += 25
		}
		if strings.Contains(requirementsFolded, termFolded) {
			score += 35
		}

		if strings.Contains(city, term) {
			score += 20
		}
		if strings.Contains(jobType, term) {
			score += 15
		}
		if strings.Contains(field, term) {
			score += 25
		}
		if strings.Contains(salary, term) {
			score += 10
		}

		if strings.Contains(content, term) || strings.Contains(contentFolded, termFolded) {
			score += 10
		}
	}

	switch age := s.daysSinceCreated(job); {
	case age < 7:
		score += 20
	case age < 30:
		score += 10
	case age < 90:
		score += 5
	}

	if job.Salary != "" && !strings.Contains(job.Salary, models.SalaryNegotiable) {
		score += 10
	}

	if job.Title != "" && job.Description != "" && job.Requirements != "" {
		score += 10
	}

	return score
}

// AuxiliaryScore is the looser fallback signal: weak content hits plus
// feature-level agreement (skills, experience, remote mode) and content
// quality. Jobs below AuxiliaryScoreThreshold never enter the tier.
func (s *Scorer) AuxiliaryScore(job models.Job, terms []string) int {
	score := 0

	content := Normalize(job.Title) + " " + Normalize(job.Description) + " " +
		Normalize(job.Requirements) + " " + Normalize(job.City) + " " +
		Normalize(job.Type) + " " + Normalize(job.Field)
	contentFolded := FoldDiacritics(content)

	features := s.analyzer.Analyze(job)

	for _, term := range terms {
		termLower := strings.ToLower(term)
		termFolded := FoldDiacritics(term)

		if strings.Contains(content, term) {
			score += 5
		}
		if strings.Contains(contentFolded, termFolded) {
			score += 4
		}

		for _, skill := range features.Skills {
			if substringEither(strings.ToLower(skill), termLower) {
				score += 8
			}
		}

		if strings.Contains(features.ExperienceLevel, termLower) {
			score += 6
		}

		if strings.Contains(termLower, RemoteWork) && features.RemoteWorkType == RemoteWork {
			score += 10
		}
		if strings.Contains(termLower, HybridWork) && features.RemoteWorkType == HybridWork {
			score += 10
		}
	}

	if len(job.Description) > 200 {
		score += 5
	}
	if len(job.Requirements) > 50 {
		score += 3
	}

	switch age := s.daysSinceCreated(job); {
	case age < 7:
		score += 10
	case age < 30:
		score += 5
	}

	return score
}

func (s *Scorer) daysSinceCreated(job models.Job) float64 {
	return s.now().Sub(job.CreatedAt).Hours() / 24
}
