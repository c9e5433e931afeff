package search

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// CatalogSource exposes the distinct-value queries behind suggestions
// and the filter-options endpoint.
type CatalogSource interface {
	TitlesMatching(ctx context.Context, query string, limit int) ([]string, error)
	DistinctCities(ctx context.Context) ([]string, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	DistinctFields(ctx context.Context) ([]string, error)
}

// The default suggestions shown before the user has typed anything.
var trendingSuggestions = []string{
	"Lập trình viên JavaScript",
	"Developer Java",
	"Data Scientist",
	"Marketing Digital",
	"Quản lý dự án",
	"Thiết kế UX/UI",
	"Remote working",
	"Intern IT",
}

type SalaryRange struct {
	Min   int64
	Max   int64
	Label string
}

type FilterOptions struct {
	Cities           []string
	Types            []string
	Fields           []string
	SalaryRanges     []SalaryRange
	ExperienceLevels []string
}

type Suggester struct {
	catalog CatalogSource
}

func NewSuggester(catalog CatalogSource) *Suggester {
	return &Suggester{catalog: catalog}
}

// Suggestions returns title completions for a partial query, padded with
// known cities; with no query it falls back to trending searches.
func (s *Suggester) Suggestions(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	if len(Tokenize(query)) == 0 {
		if limit < len(trendingSuggestions) {
			return trendingSuggestions[:limit], nil
		}
		return trendingSuggestions, nil
	}

	titles, err := s.catalog.TitlesMatching(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}

	cities, err := s.catalog.DistinctCities(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}
	if cityLimit := limit / 3; len(cities) > cityLimit {
		cities = cities[:cityLimit]
	}

	combined := lo.Uniq(append(titles, cities...))
	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined, nil
}

func (s *Suggester) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	cities, err := s.catalog.DistinctCities(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}
	types, err := s.catalog.DistinctTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}
	fields, err := s.catalog.DistinctFields(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrDataSource, err.Error())
	}

	sort.Strings(cities)
	sort.Strings(types)
	sort.Strings(fields)

	return &FilterOptions{
		Cities: cities,
		Types:  types,
		Fields: fields,
		SalaryRanges: []SalaryRange{
			{Min: 0, Max: 5_000_000, Label: "Dưới 5 triệu"},
			{Min: 5_000_000, Max: 10_000_000, Label: "5-10 triệu"},
			{Min: 10_000_000, Max: 15_000_000, Label: "10-15 triệu"},
			{Min: 15_000_000, Max: 20_000_000, Label: "15-20 triệu"},
			{Min: 20_000_000, Max: 0, Label: "Trên 20 triệu"},
		},
		ExperienceLevels: []string{"Fresher", "Junior", "Mid-level", "Senior", "Lead", "Manager"},
	}, nil
}
