package search

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vieclamviet/job-search/internal/domain/models"
)

// CachedAnalyzer memoizes feature extraction per job ID. Job content
// changes rarely, so entries stay valid until Invalidate is called on
// update or the TTL runs out.
type CachedAnalyzer struct {
	inner Analyzer
	cache *gocache.Cache
}

func NewCachedAnalyzer(inner Analyzer) *CachedAnalyzer {
	return &CachedAnalyzer{inner: inner, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedAnalyzer) Analyze(job models.Job) Features {
	if job.ID != "" {
		if value, found := c.cache.Get(job.ID); found {
			return value.(Features)
		}
	}

	features := c.inner.Analyze(job)
	if job.ID != "" {
		c.cache.Set(job.ID, features, gocache.DefaultExpiration)
	}
	return features
}

func (c *CachedAnalyzer) Invalidate(jobID string) {
	c.cache.Delete(jobID)
}
