package services

import (
	"context"
	"sort"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/events"
	"github.com/vieclamviet/job-search/internal/logger"
	"github.com/vieclamviet/job-search/internal/search"
)

const (
	profileBehaviorWindow = 100
	profileInterestLimit  = 20
	profilePrefLimit      = 5
	profileSearchLimit    = 10
)

type behaviorRepository interface {
	Add(ctx context.Context, behavior models.UserBehavior) error
	RecentByUser(ctx context.Context, userID int64, limit int) ([]models.UserBehavior, error)
}

// BehaviorTracker records search and job-view events and condenses a
// user's recent history into the UserProfile the search core consumes.
type BehaviorTracker struct {
	behaviors behaviorRepository
}

func NewBehaviorTracker(bus EventBus.Bus, behaviors behaviorRepository) (*BehaviorTracker, error) {
	t := &BehaviorTracker{behaviors: behaviors}

	if err := bus.Subscribe(events.SearchPerformedTopic, t.onSearchPerformed); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.JobViewedTopic, t.onJobViewed); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *BehaviorTracker) onSearchPerformed(event events.SearchPerformed) {
	if event.UserID == 0 {
		return
	}
	err := t.behaviors.Add(context.Background(), models.UserBehavior{
		UserID: event.UserID,
		Action: models.ActionSearch,
		Query:  event.Query,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record search behavior: %v", err)
	}
}

func (t *BehaviorTracker) onJobViewed(event events.JobViewed) {
	if event.UserID == 0 {
		return
	}
	err := t.behaviors.Add(context.Background(), models.UserBehavior{
		UserID:   event.UserID,
		Action:   models.ActionJobView,
		JobID:    event.JobID,
		JobTitle: event.JobTitle,
		JobType:  event.JobType,
		City:     event.City,
		Field:    event.Field,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record view behavior: %v", err)
	}
}

// BuildProfile aggregates the user's most recent behaviors: keyword
// frequencies from searches and viewed titles (viewed titles weigh
// double), top preferred types/locations/industries and recent search
// texts. An unknown user yields an empty profile, not an error.
func (t *BehaviorTracker) BuildProfile(ctx context.Context, userID int64) (models.UserProfile, error) {

	behaviors, err := t.behaviors.RecentByUser(ctx, userID, profileBehaviorWindow)
	if err != nil {
		return models.UserProfile{}, err
	}

	interests := map[string]int{}
	types := map[string]int{}
	locations := map[string]int{}
	industries := map[string]int{}
	var recentSearches []string

	for _, behavior := range behaviors {
		switch behavior.Action {
		case models.ActionSearch:
			for _, term := range search.Tokenize(behavior.Query) {
				if len(term) > 2 {
					interests[term]++
				}
			}
			if behavior.Query != "" && len(recentSearches) < profileSearchLimit {
				recentSearches = append(recentSearches, behavior.Query)
			}
		case models.ActionJobView, models.ActionJobSave, models.ActionApply:
			for _, term := range search.Tokenize(behavior.JobTitle) {
				if len(term) > 2 {
					interests[term] += 2
				}
			}
		}

		if behavior.JobType != "" {
			types[behavior.JobType]++
		}
		if behavior.City != "" {
			locations[behavior.City]++
		}
		if behavior.Field != "" {
			industries[behavior.Field]++
		}
	}

	return models.UserProfile{
		Interests:           topCounts(interests, profileInterestLimit),
		PreferredTypes:      topKeys(types, profilePrefLimit),
		PreferredLocations:  topKeys(locations, profilePrefLimit),
		PreferredIndustries: topKeys(industries, profilePrefLimit),
		RecentSearches:      recentSearches,
	}, nil
}

func topCounts(counts map[string]int, limit int) map[string]int {
	keys := topKeys(counts, limit)
	top := make(map[string]int, len(keys))
	for _, key := range keys {
		top[key] = counts[key]
	}
	return top
}

func topKeys(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
