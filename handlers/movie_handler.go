package handlers

import (
	"github.com/anjiri1684/movie_review/services"
	"github.com/gofiber/fiber/v2"
)

type MovieHandler struct {
	tmdb *services.TMDBService
}

func NewMovieHandler(tmdb *services.TMDBService) *MovieHandler {
	return &MovieHandler{tmdb: tmdb}
}

func (h *MovieHandler) Trending(c *fiber.Ctx) error {
	body, status, err := h.tmdb.Trending(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch trending movies", "details": err.Error()})
	}
	return relay(c, body, status)
}

func (h *MovieHandler) Popular(c *fiber.Ctx) error {
	body, status, err := h.tmdb.Popular(c.Context(), c.Query("page"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch popular movies", "details": err.Error()})
	}
	return relay(c, body, status)
}

func (h *MovieHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Search query is required"})
	}

	body, status, err := h.tmdb.Search(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to search movies", "details": err.Error()})
	}
	return relay(c, body, status)
}

func (h *MovieHandler) Details(c *fiber.Ctx) error {
	body, status, err := h.tmdb.Details(c.Context(), c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch movie details", "details": err.Error()})
	}
	if status == fiber.StatusNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Movie not found"})
	}
	return relay(c, body, status)
}

func (h *MovieHandler) Credits(c *fiber.Ctx) error {
	body, status, err := h.tmdb.Credits(c.Context(), c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch movie credits", "details": err.Error()})
	}
	return relay(c, body, status)
}

func (h *MovieHandler) Similar(c *fiber.Ctx) error {
	body, status, err := h.tmdb.Similar(c.Context(), c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch similar movies", "details": err.Error()})
	}
	return relay(c, body, status)
}

// relay passes the catalog response through untouched.
func relay(c *fiber.Ctx, body []byte, status int) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}
