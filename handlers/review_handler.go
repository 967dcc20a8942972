package handlers

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anjiri1684/movie_review/middleware"
	"github.com/anjiri1684/movie_review/models"
	"github.com/anjiri1684/movie_review/store"
	"github.com/gofiber/fiber/v2"
)

// CreateReviewRequest accepts movieId as either a string or a number;
// catalog ids arrive as numbers from the browse pages and as strings
// from deep links. It is always stored as a string.
type CreateReviewRequest struct {
	MovieID    interface{} `json:"movieId"`
	MovieTitle string      `json:"movieTitle"`
	Rating     int         `json:"rating"`
	ReviewText string      `json:"reviewText"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

type ReviewHandler struct {
	store store.ReviewStore
}

func NewReviewHandler(s store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: s}
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	movieID := movieIDString(req.MovieID)
	if movieID == "" || req.MovieTitle == "" || req.Rating == 0 || req.ReviewText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}
	text := strings.TrimSpace(req.ReviewText)
	if utf8.RuneCountInString(text) < 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Review must be at least 10 characters"})
	}

	now := time.Now().UTC()
	review := models.Review{
		MovieID:    movieID,
		MovieTitle: req.MovieTitle,
		UserID:     user.ID,
		UserEmail:  user.Email,
		Rating:     req.Rating,
		ReviewText: text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.Create(c.Context(), &review); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create review", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  review,
	})
}

func (h *ReviewHandler) GetMovieReviews(c *fiber.Ctx) error {
	reviews, err := h.store.ListByMovie(c.Context(), c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch reviews", "details": err.Error()})
	}

	sortNewestFirst(reviews)
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	reviews, err := h.store.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch user reviews", "details": err.Error()})
	}

	sortNewestFirst(reviews)
	return c.JSON(reviews)
}

func (h *ReviewHandler) GetMovieStats(c *fiber.Ctx) error {
	reviews, err := h.store.ListByMovie(c.Context(), c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch statistics", "details": err.Error()})
	}

	return c.JSON(computeStats(reviews))
}

func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	reviewID := c.Params("reviewId")

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	review, err := h.store.GetByID(c.Context(), reviewID)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update review", "details": err.Error()})
	}
	if review.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to update this review"})
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5"})
	}
	if req.ReviewText != nil {
		trimmed := strings.TrimSpace(*req.ReviewText)
		if utf8.RuneCountInString(trimmed) < 10 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Review must be at least 10 characters"})
		}
		req.ReviewText = &trimmed
	}

	update := models.ReviewUpdate{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := h.store.Update(c.Context(), reviewID, update); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to update review", "details": err.Error()})
	}

	resp := fiber.Map{
		"message":   "Review updated successfully",
		"reviewId":  reviewID,
		"updatedAt": update.UpdatedAt,
	}
	if req.Rating != nil {
		resp["rating"] = *req.Rating
	}
	if req.ReviewText != nil {
		resp["reviewText"] = *req.ReviewText
	}
	return c.JSON(resp)
}

func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	reviewID := c.Params("reviewId")

	review, err := h.store.GetByID(c.Context(), reviewID)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete review", "details": err.Error()})
	}
	if review.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to delete this review"})
	}

	if err := h.store.Delete(c.Context(), reviewID); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete review", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

// sortNewestFirst orders reviews by createdAt descending in memory, so
// the store never needs a composite index for these queries.
func sortNewestFirst(reviews []models.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func computeStats(reviews []models.Review) models.ReviewStats {
	stats := models.ReviewStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}

	// a document with a rating outside 1..5 cannot exist under the
	// validation rules; skip it everywhere so count, mean and histogram
	// always agree even on corrupt data
	total := 0
	for _, review := range reviews {
		if review.Rating < 1 || review.Rating > 5 {
			continue
		}
		stats.TotalReviews++
		total += review.Rating
		stats.RatingDistribution[review.Rating]++
	}
	if stats.TotalReviews == 0 {
		return stats
	}

	avg := float64(total) / float64(stats.TotalReviews)
	stats.AverageRating = math.Round(avg*10) / 10

	return stats
}

func movieIDString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	default:
		return ""
	}
}
