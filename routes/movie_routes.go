package routes

import (
	"github.com/anjiri1684/movie_review/handlers"
	"github.com/gofiber/fiber/v2"
)

func MovieRoutes(app *fiber.App, h *handlers.MovieHandler) {
	api := app.Group("/api/v1")

	movies := api.Group("/movies")
	movies.Get("/trending", h.Trending)
	movies.Get("/popular", h.Popular)
	movies.Get("/search", h.Search)
	movies.Get("/:movieId", h.Details)
	movies.Get("/:movieId/credits", h.Credits)
	movies.Get("/:movieId/similar", h.Similar)
}
