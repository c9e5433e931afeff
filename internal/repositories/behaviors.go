package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

type Behaviors struct {
	db *gorm.DB
}

func NewBehaviorsRepository(db *gorm.DB) *Behaviors {
	return &Behaviors{db: db}
}

func (r *Behaviors) Add(ctx context.Context, behavior models.UserBehavior) error {
	return r.db.WithContext(ctx).Create(&behavior).Error
}

func (r *Behaviors) RecentByUser(ctx context.Context, userID int64, limit int) ([]models.UserBehavior, error) {
	var behaviors []models.UserBehavior
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&behaviors).Error
	if err != nil {
		return nil, err
	}
	return behaviors, nil
}
