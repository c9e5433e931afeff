package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

func newTestBehaviorsRepository(t *testing.T) *Behaviors {
	dbContext, err := NewDbContext(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, dbContext.Migrate())
	t.Cleanup(func() { _ = dbContext.Close() })
	return NewBehaviorsRepository(dbContext.DB)
}

func Test_RecentByUser_ReturnsOwnRowsNewestFirst(t *testing.T) {
	repo := newTestBehaviorsRepository(t)
	ctx := context.Background()
	now := time.Now()

	rows := []models.UserBehavior{
		{UserID: 7, Action: models.ActionSearch, Query: "kế toán", CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: 7, Action: models.ActionJobView, JobID: "job-1", CreatedAt: now},
		{UserID: 9, Action: models.ActionSearch, Query: "marketing", CreatedAt: now},
	}
	for _, row := range rows {
		assert.NoError(t, repo.Add(ctx, row))
	}

	recent, err := repo.RecentByUser(ctx, 7, 10)

	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, models.ActionJobView, recent[0].Action)
	assert.Equal(t, models.ActionSearch, recent[1].Action)
}

func Test_RecentByUser_HonorsLimit(t *testing.T) {
	repo := newTestBehaviorsRepository(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.Add(ctx, models.UserBehavior{
			UserID: 7, Action: models.ActionSearch, Query: "lái xe",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.RecentByUser(ctx, 7, 3)

	assert.NoError(t, err)
	assert.Len(t, recent, 3)
}

func Test_RecentByUser_WhenUnknownUser_ShouldReturnEmpty(t *testing.T) {
	repo := newTestBehaviorsRepository(t)

	recent, err := repo.RecentByUser(context.Background(), 404, 10)

	assert.NoError(t, err)
	assert.Empty(t, recent)
}
