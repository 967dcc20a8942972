package store

import (
	"context"
	"errors"

	"github.com/anjiri1684/movie_review/models"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewStore is the persistence boundary for reviews. Listing returns
// documents in store order; callers decide the ordering they present.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	Update(ctx context.Context, id string, update models.ReviewUpdate) error
	Delete(ctx context.Context, id string) error
}
