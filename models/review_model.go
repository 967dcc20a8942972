package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one user-authored rating for one movie. MovieTitle and
// UserEmail are snapshots taken at submission time and are not kept in
// sync with the catalog or the account afterwards.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovieID    string             `bson:"movieId" json:"movieId"`
	MovieTitle string             `bson:"movieTitle" json:"movieTitle"`
	UserID     string             `bson:"userId" json:"userId"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText" json:"reviewText"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewUpdate carries a partial update. Nil fields are left untouched.
type ReviewUpdate struct {
	Rating     *int
	ReviewText *string
	UpdatedAt  time.Time
}

type ReviewStats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}
