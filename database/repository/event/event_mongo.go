package event

import (
	"context"
	"fmt"

	"eventvibe/database"
	"eventvibe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo is the MongoDB implementation of EventRepository.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo returns a repository backed by the "events" collection.
func NewMongoEventRepo() *MongoEventRepo {
	return &MongoEventRepo{coll: database.Collection("events")}
}

func (r *MongoEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ev)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	return &ev, nil
}

// CommitJoin increments the participant count only while capacity remains.
// The $expr guard makes the capacity check and the increment a single atomic
// operation, so a full event can never be oversold by concurrent joins.
func (r *MongoEventRepo) CommitJoin(ctx context.Context, eventID string, user models.JoinedUser) (*models.Event, error) {
	filter := bson.M{
		"id":    eventID,
		"$expr": bson.M{"$lt": bson.A{"$currentParticipants", "$maxParticipants"}},
	}
	update := bson.M{
		"$inc":  bson.M{"currentParticipants": 1},
		"$push": bson.M{"joinedUsers": user},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Event
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Either the event is gone or it filled up; disambiguate for the caller.
		existing, lookupErr := r.GetByID(ctx, eventID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if existing == nil {
			return nil, fmt.Errorf("event %s not found", eventID)
		}
		return nil, ErrNoCapacity
	}
	if err != nil {
		return nil, fmt.Errorf("failed to commit join for event %s: %w", eventID, err)
	}
	return &updated, nil
}
