package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	if err := c.DB.AutoMigrate(models.Job{}); err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	if err := c.DB.AutoMigrate(models.UserBehavior{}); err != nil {
		return fmt.Errorf("failed to migrate UserBehavior entity: %w", err)
	}

	if err := c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_behaviors_user_created " +
		"ON user_behaviors (user_id, created_at)").Error; err != nil {
		return fmt.Errorf("failed to create behavior index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
