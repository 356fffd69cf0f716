package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const EventsColName = "events"

// MongodbRepo persists events in a MongoDB collection keyed by eventId
// (stored as _id, so the server enforces uniqueness).
type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) collection() *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(EventsColName)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, ev *Event) error {
	_, err := mdb.collection().InsertOne(ctx, ev)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("%w: insert failed: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (mdb *MongodbRepo) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var ev Event
	err := mdb.collection().FindOne(ctx, bson.M{"_id": eventID}).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find failed: %v", ErrStoreUnavailable, err)
	}
	return &ev, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, eventID string, upd *UpdateEventInput, now time.Time) (*Event, error) {
	set := bson.M{"updated_at": now}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Capacity != nil {
		set["capacity"] = *upd.Capacity
	}
	if upd.Organizer != nil {
		set["organizer"] = *upd.Organizer
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ev Event
	err := mdb.collection().FindOneAndUpdate(ctx, bson.M{"_id": eventID}, bson.M{"$set": set}, opts).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: update failed: %v", ErrStoreUnavailable, err)
	}
	return &ev, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, eventID string) error {
	res, err := mdb.collection().DeleteOne(ctx, bson.M{"_id": eventID})
	if err != nil {
		return fmt.Errorf("%w: delete failed: %v", ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, filter ListFilter) ([]*Event, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Organizer != "" {
		query["organizer"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Organizer)}}
	}

	opts := options.Find().SetLimit(int64(filter.limit()))
	cursor, err := mdb.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find failed: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	for cursor.Next(ctx) {
		var ev Event
		if err := cursor.Decode(&ev); err != nil {
			return nil, fmt.Errorf("%w: decode failed: %v", ErrStoreUnavailable, err)
		}
		events = append(events, &ev)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %v", ErrStoreUnavailable, err)
	}

	return events, nil
}
