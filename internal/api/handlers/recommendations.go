package handlers

import (
	"github.com/gofiber/fiber/v3"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/api"
	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/logger"
	"github.com/vieclamviet/job-search/internal/search"
)

type RecommendationsHandler struct {
	recommender *search.Recommender
	profiles    profileBuilder

	defaultLimit int
	maxLimit     int
}

func NewRecommendationsHandler(recommender *search.Recommender, profiles profileBuilder,
	defaultLimit, maxLimit int) *RecommendationsHandler {

	return &RecommendationsHandler{
		recommender:  recommender,
		profiles:     profiles,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (h *RecommendationsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/recommendations", h.Recommendations)
}

func (h *RecommendationsHandler) Recommendations(c fiber.Ctx) error {
	limit := queryInt(c, "limit", h.defaultLimit)
	if limit <= 0 {
		return api.Error(c, fiber.StatusBadRequest, "invalid search parameters")
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	var profile models.UserProfile
	if userID := callerID(c); userID != 0 {
		built, err := h.profiles.BuildProfile(c.Context(), userID)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to build profile for user %d: %v", userID, err)
		} else {
			profile = built
		}
	}

	recommendations, err := h.recommender.Recommend(c.Context(), profile, limit)
	if err != nil {
		return mapCatalogError(c, err)
	}

	jobs := make([]jobResponse, 0, len(recommendations))
	for _, scored := range recommendations {
		jobs = append(jobs, toJobResponse(scored))
	}
	return api.Success(c, fiber.Map{
		"jobs":         jobs,
		"personalized": !profile.IsEmpty(),
	})
}
