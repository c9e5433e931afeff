package search

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/logger"
	"github.com/vieclamviet/job-search/internal/metrics"
)

// JobSource is the storage capability the orchestrator needs: structured
// predicates plus substring matching, newest first, with limit and an
// exclusion list. Only active, unexpired postings may be returned.
type JobSource interface {
	FindCandidates(ctx context.Context, query CandidateQuery) ([]models.Job, error)
}

// Candidate fetch sizes relative to the requested page, exact pass and
// the broader auxiliary pass.
const (
	exactCandidateFactor     = 3
	auxiliaryCandidateFactor = 4
)

// Service runs the tiered search: an exact pass first, then a broader
// auxiliary pass when the exact tier can't fill the page.
type Service struct {
	jobs     JobSource
	analyzer Analyzer
	filter   *FilterEngine
	scorer   *Scorer
}

func NewService(jobs JobSource, analyzer Analyzer) *Service {
	return &Service{
		jobs:     jobs,
		analyzer: analyzer,
		filter:   NewFilterEngine(analyzer),
		scorer:   NewScorer(analyzer),
	}
}

func (s *Service) Search(ctx context.Context, query Query) (*Result, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.SearchesCounter.Inc()

	terms := Tokenize(query.Text)

	exact, err := s.exactPass(ctx, terms, query)
	if err != nil {
		return nil, err
	}

	scored := exact
	if len(exact) < query.PageSize {
		auxiliary, err := s.auxiliaryPass(ctx, terms, query, exact)
		if err != nil {
			return nil, err
		}
		scored = append(scored, auxiliary...)
	}

	if query.Profile != nil {
		for i := range scored {
			scored[i].PersonalizationScore = Personalize(scored[i].Job, *query.Profile)
		}
	}

	s.sortScored(scored, terms, query)

	return assembleResult(scored, terms, query), nil
}

func (s *Service) exactPass(ctx context.Context, terms []string, query Query) ([]ScoredJob, error) {
	candidates, err := s.jobs.FindCandidates(ctx, CandidateQuery{
		Terms:  terms,
		Cities: withCityAliases(query.Filters.Cities),
		Types:  query.Filters.Types,
		Fields: query.Filters.Fields,
		Limit:  query.PageSize * exactCandidateFactor,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("exact pass fetch failed: %v", err)
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}

	survivors := s.filter.Apply(candidates, query.Filters)
	scored := lo.Map(survivors, func(job models.Job, _ int) ScoredJob {
		return ScoredJob{
			Job:            job,
			RelevanceScore: s.scorer.ExactScore(job, terms) + ExactTierBonus,
			MatchTier:      MatchTierExact,
		}
	})

	metrics.ExactMatchesCounter.Add(float64(len(scored)))
	return scored, nil
}

func (s *Service) auxiliaryPass(ctx context.Context, terms []string, query Query, exact []ScoredJob) ([]ScoredJob, error) {
	excludeIDs := lo.Map(exact, func(sj ScoredJob, _ int) string { return sj.Job.ID })

	candidates, err := s.jobs.FindCandidates(ctx, CandidateQuery{
		Cities:     withCityAliases(query.Filters.Cities),
		Types:      query.Filters.Types,
		Fields:     query.Filters.Fields,
		ExcludeIDs: excludeIDs,
		Limit:      query.PageSize * auxiliaryCandidateFactor,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("auxiliary pass fetch failed: %v", err)
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}

	survivors := s.filter.Apply(candidates, query.Filters)

	var scored []ScoredJob
	for _, job := range survivors {
		score := s.scorer.AuxiliaryScore(job, terms)
		if score < AuxiliaryScoreThreshold {
			continue
		}
		scored = append(scored, ScoredJob{
			Job:            job,
			RelevanceScore: score,
			MatchTier:      MatchTierAuxiliary,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if limit := query.PageSize * 2; len(scored) > limit {
		scored = scored[:limit]
	}

	metrics.AuxiliaryMatchesCounter.Add(float64(len(scored)))
	return scored, nil
}

// sortScored orders the merged tiers deterministically: exact tier first
// always, then the requested sort key, then recency, then ID.
func (s *Service) sortScored(scored []ScoredJob, terms []string, query Query) {
	mode := query.SortBy
	if mode == "" {
		mode = SortByRelevance
	}
	// A bare browse (no terms, no filters) is "newest active jobs".
	if mode == SortByRelevance && len(terms) == 0 && query.Filters.IsEmpty() {
		mode = SortByDate
	}
	ascending := query.SortOrder == SortAsc

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]

		if a.MatchTier != b.MatchTier {
			return a.MatchTier == MatchTierExact
		}

		var less, equal bool
		switch mode {
		case SortBySalary:
			sa, sb := ExtractSalary(a.Job.Salary), ExtractSalary(b.Job.Salary)
			less, equal = sa < sb, sa == sb
		case SortByDate:
			less, equal = a.Job.CreatedAt.Before(b.Job.CreatedAt), a.Job.CreatedAt.Equal(b.Job.CreatedAt)
		default:
			ka, kb := a.sortKey(), b.sortKey()
			less, equal = ka < kb, ka == kb
		}

		if !equal {
			if ascending {
				return less
			}
			return !less
		}

		if !a.Job.CreatedAt.Equal(b.Job.CreatedAt) {
			return a.Job.CreatedAt.After(b.Job.CreatedAt)
		}
		return a.Job.ID < b.Job.ID
	})
}

// sortKey blends the optional personalization signal into relevance at
// half weight; the tier bonus already dominates across tiers.
func (sj ScoredJob) sortKey() int {
	return sj.RelevanceScore + sj.PersonalizationScore/2
}

func assembleResult(scored []ScoredJob, terms []string, query Query) *Result {
	total := len(scored)
	totalPages := (total + query.PageSize - 1) / query.PageSize

	startIndex := (query.Page - 1) * query.PageSize
	endIndex := startIndex + query.PageSize
	if startIndex > total {
		startIndex = total
	}
	if endIndex > total {
		endIndex = total
	}

	exactCount := lo.CountBy(scored, func(sj ScoredJob) bool { return sj.MatchTier == MatchTierExact })

	return &Result{
		Jobs: scored[startIndex:endIndex],
		Pagination: Pagination{
			CurrentPage: query.Page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNext:     endIndex < total,
			HasPrev:     query.Page > 1,
		},
		Terms:               terms,
		ExactMatchCount:     exactCount,
		AuxiliaryMatchCount: total - exactCount,
	}
}
