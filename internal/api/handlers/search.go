package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	log "github.com/sirupsen/logrus"

	"github.com/vieclamviet/job-search/internal/api"
	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/events"
	"github.com/vieclamviet/job-search/internal/logger"
	"github.com/vieclamviet/job-search/internal/search"
)

const searchTimeout = 10 * time.Second

type profileBuilder interface {
	BuildProfile(ctx context.Context, userID int64) (models.UserProfile, error)
}

type searchRequest struct {
	Query     string `validate:"max=200"`
	Page      int    `validate:"gte=1"`
	PageSize  int    `validate:"gte=1"`
	SalaryMin int64  `validate:"gte=0"`
	SalaryMax int64  `validate:"gte=0"`
}

type jobResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	Description     string    `json:"description"`
	Salary          string    `json:"salary"`
	City            string    `json:"city"`
	Type            string    `json:"type"`
	WorkTime        string    `json:"workTime"`
	Field           string    `json:"field"`
	CompanyName     string    `json:"companyName"`
	CompanyLogo     string    `json:"companyLogo"`
	RelevanceScore  int       `json:"relevanceScore"`
	MatchTier       string    `json:"matchTier"`
	CreatedAt       time.Time `json:"createdAt"`
	ExpiryTime      time.Time `json:"expiryTime"`
	CompanyVerified bool      `json:"companyVerified"`
}

type searchResponse struct {
	Jobs       []jobResponse `json:"jobs"`
	Pagination struct {
		CurrentPage int  `json:"currentPage"`
		TotalPages  int  `json:"totalPages"`
		TotalCount  int  `json:"totalCount"`
		HasNextPage bool `json:"hasNextPage"`
		HasPrevPage bool `json:"hasPrevPage"`
	} `json:"pagination"`
	SearchTerms         []string `json:"searchTerms"`
	ExactMatchCount     int      `json:"exactMatchCount"`
	AuxiliaryMatchCount int      `json:"auxiliaryMatchCount"`
}

type SearchHandler struct {
	service  *search.Service
	profiles profileBuilder
	bus      EventBus.Bus
	validate *validator.Validate

	maxPageSize     int
	defaultPageSize int
}

func NewSearchHandler(service *search.Service, profiles profileBuilder, bus EventBus.Bus,
	defaultPageSize, maxPageSize int) *SearchHandler {

	return &SearchHandler{
		service:         service,
		profiles:        profiles,
		bus:             bus,
		validate:        validator.New(),
		maxPageSize:     maxPageSize,
		defaultPageSize: defaultPageSize,
	}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/search", h.Search)
}

func (h *SearchHandler) Search(c fiber.Ctx) error {

	request := searchRequest{
		Query:     c.Query("q"),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "page_size", h.defaultPageSize),
		SalaryMin: queryInt64(c, "salary_min", 0),
		SalaryMax: queryInt64(c, "salary_max", 0),
	}
	if err := h.validate.Struct(request); err != nil {
		return api.Error(c, fiber.StatusBadRequest, "invalid search parameters")
	}
	if request.PageSize > h.maxPageSize {
		request.PageSize = h.maxPageSize
	}

	query := search.Query{
		Text: request.Query,
		Filters: search.Filters{
			Cities:     queryList(c, "cities"),
			Types:      queryList(c, "types"),
			Fields:     queryList(c, "fields"),
			Skills:     queryList(c, "skills"),
			Experience: queryList(c, "experience"),
			SalaryMin:  request.SalaryMin,
			SalaryMax:  request.SalaryMax,
			RemoteWork: c.Query("remote"),
		},
		Page:      request.Page,
		PageSize:  request.PageSize,
		SortBy:    search.SortMode(c.Query("sort_by", string(search.SortByRelevance))),
		SortOrder: search.SortDirection(c.Query("sort_order", string(search.SortDesc))),
	}

	userID := callerID(c)
	if userID != 0 {
		profile, err := h.profiles.BuildProfile(c.Context(), userID)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to build profile for user %d: %v", userID, err)
		} else if !profile.IsEmpty() {
			query.Profile = &profile
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), searchTimeout)
	defer cancel()

	result, err := h.service.Search(ctx, query)
	if err != nil {
		return mapSearchError(c, err)
	}

	h.bus.Publish(events.SearchPerformedTopic, events.SearchPerformed{
		UserID:      userID,
		Query:       request.Query,
		ResultCount: result.Pagination.TotalCount,
	})

	return api.Success(c, toSearchResponse(result))
}

func toSearchResponse(result *search.Result) searchResponse {
	response := searchResponse{
		Jobs:                make([]jobResponse, 0, len(result.Jobs)),
		SearchTerms:         result.Terms,
		ExactMatchCount:     result.ExactMatchCount,
		AuxiliaryMatchCount: result.AuxiliaryMatchCount,
	}
	response.Pagination.CurrentPage = result.Pagination.CurrentPage
	response.Pagination.TotalPages = result.Pagination.TotalPages
	response.Pagination.TotalCount = result.Pagination.TotalCount
	response.Pagination.HasNextPage = result.Pagination.HasNext
	response.Pagination.HasPrevPage = result.Pagination.HasPrev

	for _, scored := range result.Jobs {
		response.Jobs = append(response.Jobs, toJobResponse(scored))
	}
	return response
}

func toJobResponse(scored search.ScoredJob) jobResponse {
	job := scored.Job

	description := job.Description
	if runes := []rune(description); len(runes) > 200 {
		description = string(runes[:200]) + "..."
	}

	return jobResponse{
		ID:              job.ID,
		Title:           job.Title,
		Status:          defaultString(job.Status, models.JobStatusActive),
		Description:     defaultString(description, "Không có mô tả"),
		Salary:          defaultString(job.Salary, models.SalaryNegotiable),
		City:            defaultString(job.City, "Không xác định"),
		Type:            defaultString(job.Type, "Full-time"),
		WorkTime:        job.WorkTime,
		Field:           defaultString(job.Field, "Công nghệ thông tin"),
		CompanyName:     defaultString(job.CompanyName, "Công ty"),
		CompanyLogo:     job.CompanyLogo,
		RelevanceScore:  scored.RelevanceScore,
		MatchTier:       scored.MatchTier,
		CreatedAt:       job.CreatedAt,
		ExpiryTime:      job.ExpiryTime,
		CompanyVerified: job.CompanyVerified,
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func mapSearchError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidQuery):
		return api.Error(c, fiber.StatusBadRequest, "invalid search parameters")
	case errors.Is(err, search.ErrDataSource):
		return api.Error(c, fiber.StatusServiceUnavailable, "search could not be completed, try again")
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("unexpected search failure: %v", err)
		return api.Error(c, fiber.StatusInternalServerError, "search could not be completed, try again")
	}
}

// callerID trusts the upstream auth proxy's user header; anonymous
// callers get no personalization.
func callerID(c fiber.Ctx) int64 {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func queryInt(c fiber.Ctx, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return value
}

func queryInt64(c fiber.Ctx, key string, defaultValue int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return -1
	}
	return value
}

func queryList(c fiber.Ctx, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
