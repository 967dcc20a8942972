package store

import (
	"context"

	"github.com/anjiri1684/movie_review/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoReviewStore struct {
	col *mongo.Collection
}

func NewMongoReviewStore(db *mongo.Database) ReviewStore {
	return &mongoReviewStore{col: db.Collection("reviews")}
}

func (s *mongoReviewStore) Create(ctx context.Context, review *models.Review) error {
	res, err := s.col.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoReviewStore) GetByID(ctx context.Context, id string) (*models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// an unparseable id cannot match any document
		return nil, ErrReviewNotFound
	}

	var review models.Review
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *mongoReviewStore) ListByMovie(ctx context.Context, movieID string) ([]models.Review, error) {
	return s.list(ctx, bson.M{"movieId": movieID})
}

func (s *mongoReviewStore) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

// list runs a plain equality-filter query with no store-side sort, so no
// compound index is ever required.
func (s *mongoReviewStore) list(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *mongoReviewStore) Update(ctx context.Context, id string, update models.ReviewUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrReviewNotFound
	}

	set := bson.M{"updatedAt": update.UpdatedAt}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.ReviewText != nil {
		set["reviewText"] = *update.ReviewText
	}

	res, err := s.col.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (s *mongoReviewStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrReviewNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrReviewNotFound
	}
	return nil
}
