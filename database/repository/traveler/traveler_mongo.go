package traveler

import (
	"context"
	"fmt"

	"eventvibe/database"
	"eventvibe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTravelerRepo is the MongoDB implementation of TravelerRepository.
type MongoTravelerRepo struct {
	coll *mongo.Collection
}

// NewMongoTravelerRepo returns a repository backed by the "travelers" collection.
func NewMongoTravelerRepo() *MongoTravelerRepo {
	return &MongoTravelerRepo{coll: database.Collection("travelers")}
}

func (r *MongoTravelerRepo) GetAll(ctx context.Context) ([]models.Traveler, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch travelers: %w", err)
	}
	defer cursor.Close(ctx)

	var travelers []models.Traveler
	if err := cursor.All(ctx, &travelers); err != nil {
		return nil, fmt.Errorf("failed to decode travelers: %w", err)
	}
	return travelers, nil
}
