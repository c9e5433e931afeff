package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/search"
)

// Jobs is the sqlite-backed job collection. Every query restricts to
// active postings with a future expiry; expired rows never leak into any
// search path.
type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (r *Jobs) Add(ctx context.Context, job *models.Job) error {
	job.SearchText = search.FoldDiacritics(strings.Join(
		[]string{job.Title, job.Description, job.Requirements, job.Field}, " "))
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindCandidates implements search.JobSource: case-insensitive substring
// matching for cities, membership predicates for types and fields, an OR
// of substring conditions over the text columns (direct and
// diacritic-folded), an ID exclusion list, newest first, limited.
func (r *Jobs) FindCandidates(ctx context.Context, query search.CandidateQuery) ([]models.Job, error) {

	tx := r.searchable(ctx)

	if len(query.Cities) > 0 {
		cityMatch := r.db.Session(&gorm.Session{NewDB: true})
		for _, city := range query.Cities {
			cityMatch = cityMatch.Or("lower(city) LIKE ?", "%"+strings.ToLower(city)+"%")
		}
		tx = tx.Where(cityMatch)
	}
	if len(query.Types) > 0 {
		tx = tx.Where("type IN ?", query.Types)
	}
	if len(query.Fields) > 0 {
		tx = tx.Where("field IN ?", query.Fields)
	}
	if len(query.ExcludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", query.ExcludeIDs)
	}

	if len(query.Terms) > 0 {
		textMatch := r.db.Session(&gorm.Session{NewDB: true})
		for _, term := range query.Terms {
			pattern := "%" + strings.ToLower(term) + "%"
			// sqlite's lower() folds ASCII only; the folded shadow column
			// catches accented upper-case text.
			foldedPattern := "%" + search.FoldDiacritics(term) + "%"
			textMatch = textMatch.Or(
				r.db.Session(&gorm.Session{NewDB: true}).
					Where("lower(title) LIKE ?", pattern).
					Or("lower(description) LIKE ?", pattern).
					Or("lower(requirements) LIKE ?", pattern).
					Or("lower(field) LIKE ?", pattern).
					Or("search_text LIKE ?", foldedPattern))
		}
		tx = tx.Where(textMatch)
	}

	var jobs []models.Job
	if err := tx.Order("created_at DESC").Limit(query.Limit).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// TitlesMatching implements part of search.CatalogSource.
func (r *Jobs) TitlesMatching(ctx context.Context, query string, limit int) ([]string, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var titles []string
	err := r.searchable(ctx).
		Model(&models.Job{}).
		Distinct().
		Where(r.db.Session(&gorm.Session{NewDB: true}).
			Where("lower(title) LIKE ?", pattern).
			Or("lower(field) LIKE ?", pattern)).
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *Jobs) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "city")
}

func (r *Jobs) DistinctTypes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "type")
}

func (r *Jobs) DistinctFields(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "field")
}

// MarkExpired flips active postings past their expiry to the expired
// status; returns how many rows changed.
func (r *Jobs) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ? AND expiry_time < ?", models.JobStatusActive, now).
		Update("status", models.JobStatusExpired)
	return res.RowsAffected, res.Error
}

func (r *Jobs) searchable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Where("expiry_time >= ?", time.Now())
}

func (r *Jobs) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.searchable(ctx).
		Distinct().
		Where(column + " <> ''").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
