package routes

import (
	"github.com/anjiri1684/movie_review/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", h.SignUp)
	auth.Post("/login", h.Login)
	auth.Get("/user/:uid", h.GetUser)
	auth.Delete("/user/:uid", h.DeleteUser)
}
