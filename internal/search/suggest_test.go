package search

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeCatalogSource struct {
	titles []string
	cities []string
	types  []string
	fields []string
	err    error
}

func (f *fakeCatalogSource) TitlesMatching(_ context.Context, _ string, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.titles) > limit {
		return f.titles[:limit], nil
	}
	return f.titles, nil
}

func (f *fakeCatalogSource) DistinctCities(_ context.Context) ([]string, error) {
	return f.cities, f.err
}

func (f *fakeCatalogSource) DistinctTypes(_ context.Context) ([]string, error) {
	return f.types, f.err
}

func (f *fakeCatalogSource) DistinctFields(_ context.Context) ([]string, error) {
	return f.fields, f.err
}

func Test_Suggestions_WhenQueryEmpty_ShouldReturnTrending(t *testing.T) {
	suggester := NewSuggester(&fakeCatalogSource{})

	suggestions, err := suggester.Suggestions(context.Background(), "", 5)

	assert.NoError(t, err)
	assert.Equal(t, trendingSuggestions[:5], suggestions)
}

func Test_Suggestions_WhenQueryOnlyStopWords_ShouldReturnTrending(t *testing.T) {
	suggester := NewSuggester(&fakeCatalogSource{})

	suggestions, err := suggester.Suggestions(context.Background(), "và của", 20)

	assert.NoError(t, err)
	assert.Equal(t, trendingSuggestions, suggestions)
}

func Test_Suggestions_MergesTitlesWithCitiesWithoutDuplicates(t *testing.T) {
	catalog := &fakeCatalogSource{
		titles: []string{"Kế toán trưởng", "Kế toán nội bộ", "Hà Nội"},
		cities: []string{"Hà Nội", "Đà Nẵng", "Hồ Chí Minh"},
	}
	suggester := NewSuggester(catalog)

	suggestions, err := suggester.Suggestions(context.Background(), "kế toán", 9)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Kế toán trưởng", "Kế toán nội bộ", "Hà Nội", "Đà Nẵng", "Hồ Chí Minh"}, suggestions)
}

func Test_Suggestions_RespectsLimit(t *testing.T) {
	catalog := &fakeCatalogSource{
		titles: []string{"Tài xế giao hàng", "Tài xế xe tải", "Tài xế riêng"},
		cities: []string{"Hà Nội"},
	}
	suggester := NewSuggester(catalog)

	suggestions, err := suggester.Suggestions(context.Background(), "tài xế", 3)

	assert.NoError(t, err)
	assert.Len(t, suggestions, 3)
}

func Test_Suggestions_WhenCatalogFails_ShouldReturnDataSourceError(t *testing.T) {
	suggester := NewSuggester(&fakeCatalogSource{err: errors.New("disk io error")})

	suggestions, err := suggester.Suggestions(context.Background(), "kế toán", 10)

	assert.Nil(t, suggestions)
	assert.ErrorIs(t, err, ErrDataSource)
}

func Test_FilterOptions_SortsDistinctsAndCarriesStaticRanges(t *testing.T) {
	catalog := &fakeCatalogSource{
		cities: []string{"Hồ Chí Minh", "Hà Nội"},
		types:  []string{"Part-time", "Full-time"},
		fields: []string{"Marketing", "Công nghệ thông tin"},
	}
	suggester := NewSuggester(catalog)

	options, err := suggester.FilterOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Hà Nội", "Hồ Chí Minh"}, options.Cities)
	assert.Equal(t, []string{"Full-time", "Part-time"}, options.Types)
	assert.Len(t, options.SalaryRanges, 5)
	assert.Equal(t, int64(0), options.SalaryRanges[len(options.SalaryRanges)-1].Max)
	assert.Len(t, options.ExperienceLevels, 6)
}
