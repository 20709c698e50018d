package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"busadmin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned when an update matches no document.
var ErrBookingNotFound = errors.New("booking not found")

// StatusFilterAll is the sentinel that disables status filtering.
const StatusFilterAll = "ALL"

const queryTimeout = 5 * time.Second

// MongoBookingRepo implements BookingRepository on the bookings collection.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo builds a repository bound to the given database handle.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

func (repo *MongoBookingRepo) List(ctx context.Context, statusFilter string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if statusFilter != "" && statusFilter != StatusFilterAll {
		// Substring regex so "CANCEL" matches "Cancel - Payment Left" and
		// "CANCELLED" alike; the status field is free text.
		filter["status"] = bson.M{"$regex": regexp.QuoteMeta(statusFilter), "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) ListPendingRefunds(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"status": models.StatusCancelPaymentLeft}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending refunds: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode pending refunds: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) MarkRefunded(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":    models.StatusRefunded,
		"updatedAt": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
