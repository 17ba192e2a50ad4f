package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ideavault/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidAnnounceID marks announcement ids that are not valid hex
// object ids.
var ErrInvalidAnnounceID = errors.New("invalid announce id")

// AnnounceRepository defines the interface for announcement operations
type AnnounceRepository interface {
	CreateAnnounce(ctx context.Context, announce *models.Announce) error
	GetAnnounceByID(ctx context.Context, id string) (*models.Announce, error)
	GetAnnounces(ctx context.Context, skip, limit int64) ([]models.Announce, error)
	DeleteAnnounce(ctx context.Context, id string) error
}

// MongoAnnounceRepository implements AnnounceRepository for MongoDB
type MongoAnnounceRepository struct {
	collection *mongo.Collection
}

// NewMongoAnnounceRepository creates a new MongoAnnounceRepository
func NewMongoAnnounceRepository(db *mongo.Database) *MongoAnnounceRepository {
	return &MongoAnnounceRepository{collection: db.Collection("announces")}
}

// CreateAnnounce creates a new announcement in MongoDB
func (r *MongoAnnounceRepository) CreateAnnounce(ctx context.Context, announce *models.Announce) error {
	announce.ID = primitive.NewObjectID()
	announce.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, announce)
	return err
}

// GetAnnounceByID retrieves an announcement by ID from MongoDB
func (r *MongoAnnounceRepository) GetAnnounceByID(ctx context.Context, id string) (*models.Announce, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnnounceID, id)
	}

	var announce models.Announce
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&announce); err != nil {
		return nil, err
	}
	return &announce, nil
}

// GetAnnounces retrieves announcements from MongoDB, newest first
func (r *MongoAnnounceRepository) GetAnnounces(ctx context.Context, skip, limit int64) ([]models.Announce, error) {
	var announces []models.Announce
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &announces); err != nil {
		return nil, err
	}
	return announces, nil
}

// DeleteAnnounce deletes an announcement by ID from MongoDB
func (r *MongoAnnounceRepository) DeleteAnnounce(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAnnounceID, id)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
