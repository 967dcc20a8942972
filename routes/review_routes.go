package routes

import (
	"github.com/anjiri1684/movie_review/handlers"
	"github.com/gofiber/fiber/v2"
)

// ReviewRoutes wires the review core. Reads are public; every mutating
// route sits behind the auth gate.
func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Get("/movie/:movieId", h.GetMovieReviews)
	reviews.Get("/user/:userId", h.GetUserReviews)
	reviews.Get("/stats/:movieId", h.GetMovieStats)
	reviews.Post("", protected, h.CreateReview)
	reviews.Put("/:reviewId", protected, h.UpdateReview)
	reviews.Delete("/:reviewId", protected, h.DeleteReview)
}
