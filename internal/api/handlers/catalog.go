package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/vieclamviet/job-search/internal/api"
	"github.com/vieclamviet/job-search/internal/search"
)

type CatalogHandler struct {
	suggester       *search.Suggester
	suggestionLimit int
}

func NewCatalogHandler(suggester *search.Suggester, suggestionLimit int) *CatalogHandler {
	return &CatalogHandler{suggester: suggester, suggestionLimit: suggestionLimit}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/suggestions", h.Suggestions)
	r.Get("/jobs/filters", h.FilterOptions)
}

func (h *CatalogHandler) Suggestions(c fiber.Ctx) error {
	suggestions, err := h.suggester.Suggestions(c.Context(), c.Query("q"), h.suggestionLimit)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return api.Success(c, fiber.Map{"suggestions": suggestions})
}

func (h *CatalogHandler) FilterOptions(c fiber.Ctx) error {
	options, err := h.suggester.FilterOptions(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return api.Success(c, options)
}

func mapCatalogError(c fiber.Ctx, err error) error {
	if errors.Is(err, search.ErrDataSource) {
		return api.Error(c, fiber.StatusServiceUnavailable, "search could not be completed, try again")
	}
	return api.Error(c, fiber.StatusInternalServerError, "search could not be completed, try again")
}
