package spotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parksmart/geo"
	"parksmart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSpotRepo implements SpotRepository using MongoDB.
type MongoSpotRepo struct {
	coll *mongo.Collection
}

// NewMongoSpotRepo creates a new SpotRepository backed by the "parking_spots"
// collection.
func NewMongoSpotRepo(client *mongo.Client, dbName string) *MongoSpotRepo {
	coll := client.Database(dbName).Collection("parking_spots")
	return &MongoSpotRepo{coll: coll}
}

func (r *MongoSpotRepo) Insert(ctx context.Context, spot *models.ParkingSpot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, spot); err != nil {
		return fmt.Errorf("failed to insert spot: %w", err)
	}
	return nil
}

func (r *MongoSpotRepo) GetByID(ctx context.Context, id string) (*models.ParkingSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var spot models.ParkingSpot
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&spot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch spot with id %s: %w", id, err)
	}
	return &spot, nil
}

func (r *MongoSpotRepo) FindByGeohashRange(ctx context.Context, bounds geo.Bounds) ([]models.ParkingSpot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"geohash": bson.M{"$gte": bounds.Start, "$lte": bounds.End},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("geohash range query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var spots []models.ParkingSpot
	for cursor.Next(ctx) {
		var s models.ParkingSpot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode spot: %w", err)
		}
		spots = append(spots, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return spots, nil
}

// ClaimIfAvailable performs the availability check and flip as one conditional
// write, so two concurrent claims on the same spot cannot both succeed.
func (r *MongoSpotRepo) ClaimIfAvailable(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "available": true}
	update := bson.M{"$set": bson.M{"available": false}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to claim spot with id %s: %w", id, err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *MongoSpotRepo) Release(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"available": true}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release spot with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("spot with id %s not found", id)
	}
	return nil
}
