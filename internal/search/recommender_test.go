package search

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

func Test_Recommend_WhenProfileEmpty_ShouldReturnNewestActive(t *testing.T) {
	now := time.Now()
	source := &fakeJobSource{jobs: []models.Job{
		activeJob("old", "Thợ điện", now.AddDate(0, 0, -10)),
		activeJob("newest", "Đầu bếp", now),
		activeJob("middle", "Bảo vệ", now.AddDate(0, 0, -5)),
	}}
	recommender := NewRecommender(source)

	recommendations, err := recommender.Recommend(context.Background(), models.UserProfile{}, 10)

	assert.NoError(t, err)
	ids := lo.Map(recommendations, func(sj ScoredJob, _ int) string { return sj.Job.ID })
	assert.Equal(t, []string{"newest", "middle", "old"}, ids)
	assert.Zero(t, recommendations[0].PersonalizationScore)
}

func Test_Recommend_ProfileFitOutranksRecency(t *testing.T) {
	now := time.Now()
	fitting := activeJob("fit", "Lập trình viên Python", now.AddDate(0, 0, -20))
	fresh := activeJob("fresh", "Nhân viên bán hàng", now)

	source := &fakeJobSource{jobs: []models.Job{fresh, fitting}}
	recommender := NewRecommender(source)
	profile := models.UserProfile{Interests: map[string]int{"python": 10}}

	recommendations, err := recommender.Recommend(context.Background(), profile, 10)

	assert.NoError(t, err)
	assert.Equal(t, "fit", recommendations[0].Job.ID)
	assert.Greater(t, recommendations[0].PersonalizationScore, recommendations[1].PersonalizationScore)
}

func Test_Recommend_HonorsLimit(t *testing.T) {
	now := time.Now()
	source := &fakeJobSource{jobs: []models.Job{
		activeJob("a", "Kế toán", now),
		activeJob("b", "Kế toán", now),
		activeJob("c", "Kế toán", now),
	}}
	recommender := NewRecommender(source)

	recommendations, err := recommender.Recommend(context.Background(), models.UserProfile{}, 2)

	assert.NoError(t, err)
	assert.Len(t, recommendations, 2)
}

func Test_Recommend_WhenStoreFails_ShouldReturnDataSourceError(t *testing.T) {
	source := &fakeJobSource{err: errors.New("connection refused")}
	recommender := NewRecommender(source)

	recommendations, err := recommender.Recommend(context.Background(), models.UserProfile{}, 10)

	assert.Nil(t, recommendations)
	assert.ErrorIs(t, err, ErrDataSource)
}
