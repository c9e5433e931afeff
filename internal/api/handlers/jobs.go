package handlers

import (
	"context"
	"errors"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"

	"github.com/vieclamviet/job-search/internal/api"
	"github.com/vieclamviet/job-search/internal/domain/models"
	"github.com/vieclamviet/job-search/internal/events"
	"github.com/vieclamviet/job-search/internal/search"
)

type jobGetter interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
}

type JobsHandler struct {
	jobs jobGetter
	bus  EventBus.Bus
}

func NewJobsHandler(jobs jobGetter, bus EventBus.Bus) *JobsHandler {
	return &JobsHandler{jobs: jobs, bus: bus}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/:id", h.GetJob)
}

func (h *JobsHandler) GetJob(c fiber.Ctx) error {
	job, err := h.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return api.Error(c, fiber.StatusNotFound, "job not found")
		}
		return api.Error(c, fiber.StatusServiceUnavailable, "search could not be completed, try again")
	}

	h.bus.Publish(events.JobViewedTopic, events.JobViewed{
		UserID:   callerID(c),
		JobID:    job.ID,
		JobTitle: job.Title,
		JobType:  job.Type,
		City:     job.City,
		Field:    job.Field,
	})

	return api.Success(c, toJobResponse(search.ScoredJob{Job: *job}))
}
