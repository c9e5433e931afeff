package search

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

const recommendCandidateFactor = 5

// Recommender serves query-less job suggestions. Known users get recent
// active postings ranked by profile fit; everyone else gets the plain
// newest-first list.
type Recommender struct {
	jobs JobSource
}

func NewRecommender(jobs JobSource) *Recommender {
	return &Recommender{jobs: jobs}
}

func (r *Recommender) Recommend(ctx context.Context, profile models.UserProfile, limit int) ([]ScoredJob, error) {
	if limit <= 0 {
		limit = 10
	}

	candidates, err := r.jobs.FindCandidates(ctx, CandidateQuery{
		Limit: limit * recommendCandidateFactor,
	})
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}

	scored := lo.Map(candidates, func(job models.Job, _ int) ScoredJob {
		sj := ScoredJob{Job: job}
		if !profile.IsEmpty() {
			sj.PersonalizationScore = Personalize(job, profile)
		}
		return sj
	})

	// Candidates arrive newest first, which is already the anonymous
	// ordering; a profile reranks by fit with recency as tie-break.
	if !profile.IsEmpty() {
		sort.SliceStable(scored, func(i, j int) bool {
			a, b := scored[i], scored[j]
			if a.PersonalizationScore != b.PersonalizationScore {
				return a.PersonalizationScore > b.PersonalizationScore
			}
			if !a.Job.CreatedAt.Equal(b.Job.CreatedAt) {
				return a.Job.CreatedAt.After(b.Job.CreatedAt)
			}
			return a.Job.ID < b.Job.ID
		})
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
