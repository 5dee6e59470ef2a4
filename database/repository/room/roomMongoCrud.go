// File: database/repository/room/roomMongoCrud.go
package roomRepo

import (
	"fmt"
	"time"

	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set update built from whitelisted fields.
func (r *MongoRoomRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

// Delete removes a room document by its ID.
func (r *MongoRoomRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

// Claim flips available true -> false in a single conditional update. A
// MatchedCount of zero means the room was already held (or does not exist);
// the caller distinguishes the two with GetByID.
func (r *MongoRoomRepo) Claim(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "available": true}
	update := bson.M{"$set": bson.M{"available": false}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to claim room with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// Release marks the room available again.
func (r *MongoRoomRepo) Release(id string) error {
	return r.setAvailable(id, true)
}

// Hold marks the room unavailable regardless of its current flag.
func (r *MongoRoomRepo) Hold(id string) error {
	return r.setAvailable(id, false)
}

func (r *MongoRoomRepo) setAvailable(id string, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"available": available}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}
