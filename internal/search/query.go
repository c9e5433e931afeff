package search

import (
	"github.com/pkg/errors"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

// ErrDataSource marks a failed candidate fetch. It is propagated as-is so
// the caller can distinguish a broken store from an empty result page.
var ErrDataSource = errors.New("job store unreachable")

// ErrInvalidQuery rejects malformed query specs before any fetch happens.
var ErrInvalidQuery = errors.New("invalid search parameters")

type SortMode string

const (
	SortByRelevance SortMode = "relevance"
	SortBySalary    SortMode = "salary"
	SortByDate      SortMode = "date"
)

type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
)

const (
	MatchTierExact     = "exact"
	MatchTierAuxiliary = "auxiliary"
)

// Filters are the structured dimensions of a query. Empty dimensions
// impose no constraint.
type Filters struct {
	Cities     []string
	Types      []string
	Fields     []string
	Skills     []string
	Experience []string
	SalaryMin  int64
	SalaryMax  int64
	RemoteWork string
}

func (f Filters) IsEmpty() bool {
	return len(f.Cities) == 0 && len(f.Types) == 0 && len(f.Fields) == 0 &&
		len(f.Skills) == 0 && len(f.Experience) == 0 &&
		f.SalaryMin == 0 && f.SalaryMax == 0 && f.RemoteWork == ""
}

// Query is one search invocation. Profile is optional; when present the
// orchestrator blends a personalization signal into the sort key.
type Query struct {
	Text      string
	Filters   Filters
	Page      int
	PageSize  int
	SortBy    SortMode
	SortOrder SortDirection
	Profile   *models.UserProfile
}

func (q Query) validate() error {
	if q.Page < 1 {
		return errors.Wrap(ErrInvalidQuery, "page must be at least 1")
	}
	if q.PageSize < 1 {
		return errors.Wrap(ErrInvalidQuery, "page size must be positive")
	}
	if q.Filters.SalaryMin < 0 || q.Filters.SalaryMax < 0 {
		return errors.Wrap(ErrInvalidQuery, "salary bounds must be non-negative")
	}
	if q.Filters.SalaryMax > 0 && q.Filters.SalaryMin > q.Filters.SalaryMax {
		return errors.Wrap(ErrInvalidQuery, "salary minimum exceeds maximum")
	}
	return nil
}

// CandidateQuery is the storage-level slice of a search: structured
// predicates the store can evaluate plus free-text substrings. Cities
// match case-insensitively as substrings, terms also match against a
// diacritic-folded copy of the text. The store always restricts to
// active, unexpired postings and returns newest first.
type CandidateQuery struct {
	Terms      []string
	Cities     []string
	Types      []string
	Fields     []string
	ExcludeIDs []string
	Limit      int
}

// ScoredJob lives for one search invocation only.
type ScoredJob struct {
	Job                  models.Job
	RelevanceScore       int
	MatchTier            string
	PersonalizationScore int
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasNext     bool
	HasPrev     bool
}

// Result is the assembled response envelope: one ranked page plus
// diagnostics. Plain data, directly serializable.
type Result struct {
	Jobs                []ScoredJob
	Pagination          Pagination
	Terms               []string
	ExactMatchCount     int
	AuxiliaryMatchCount int
}
