package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"busadmin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TotalConfirmedRevenue sums amount over bookings whose status is exactly
// CONFIRMED. Other statuses never contribute.
func (repo *MongoBookingRepo) TotalConfirmedRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.StatusConfirmed}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("revenue aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding revenue aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CountCreatedSince counts bookings created at or after the given instant.
func (repo *MongoBookingRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count recent bookings: %w", err)
	}
	return count, nil
}

// CountCancelled counts bookings in any cancellation or refund state. The
// status field is free text, so this matches "cancel" or "refund" anywhere
// in the string, case-insensitively.
func (repo *MongoBookingRepo) CountCancelled(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{
		"status": bson.M{"$regex": "cancel|refund", "$options": "i"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count cancelled bookings: %w", err)
	}
	return count, nil
}

// DailyConfirmedRevenue groups confirmed revenue per calendar day (server
// timezone day boundary) from the given instant onward, ascending by date.
// Days with no confirmed bookings are simply absent.
func (repo *MongoBookingRepo) DailyConfirmedRevenue(ctx context.Context, since time.Time) ([]models.DailyRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": since},
			"status":    models.StatusConfirmed,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"revenue": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("chart aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var series []models.DailyRevenue
	if err := cursor.All(ctx, &series); err != nil {
		return nil, fmt.Errorf("error decoding chart aggregation result: %w", err)
	}
	return series, nil
}
