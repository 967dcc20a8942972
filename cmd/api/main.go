package main

import (
	"log"
	"time"

	config "github.com/anjiri1684/movie_review/configs"
	"github.com/anjiri1684/movie_review/database"
	"github.com/anjiri1684/movie_review/handlers"
	"github.com/anjiri1684/movie_review/middleware"
	"github.com/anjiri1684/movie_review/routes"
	"github.com/anjiri1684/movie_review/services"
	"github.com/anjiri1684/movie_review/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.MongoURI, cfg.MongoDBName)

	reviewStore := store.NewMongoReviewStore(db)
	userStore := store.NewMongoUserStore(db)
	tmdb := services.NewTMDBService(cfg.TMDBAPIKey)

	reviewHandler := handlers.NewReviewHandler(reviewStore)
	authHandler := handlers.NewAuthHandler(userStore, cfg.JWTSecret)
	movieHandler := handlers.NewMovieHandler(tmdb)
	protected := middleware.Protected(cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Movie Review API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Movie Review Backend API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":    "/api/v1/auth",
				"reviews": "/api/v1/reviews",
				"movies":  "/api/v1/movies",
				"health":  "/health",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Movie Review API is running",
			"timestamp": time.Now().UTC(),
		})
	})

	routes.AuthRoutes(app, authHandler)
	routes.ReviewRoutes(app, reviewHandler, protected)
	routes.MovieRoutes(app, movieHandler)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	})

	log.Printf("✅ Server is running on port %s", cfg.Port)
	err := app.Listen(":" + cfg.Port)
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
