package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"busadmin/config"
	"busadmin/database"
	"busadmin/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the bookings collection with a realistic spread of statuses for
// dashboard development: mostly confirmed, some awaiting refund, some
// cancelled or already refunded.
func main() {
	config.LoadConfig()
	client := database.InitDB()
	defer database.Disconnect(client)
	bookingColl := database.Database(client).Collection("bookings")

	// Clear existing bookings.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := bookingColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear bookings collection: %v", err)
	}

	statuses := []struct {
		Value  string
		Weight int
	}{
		{models.StatusConfirmed, 70},
		{models.StatusCancelPaymentLeft, 10},
		{"CANCELLED", 10},
		{models.StatusRefunded, 8},
		{"partial-refund", 2},
	}

	pick := func() string {
		n := rand.Intn(100)
		for _, s := range statuses {
			if n < s.Weight {
				return s.Value
			}
			n -= s.Weight
		}
		return models.StatusConfirmed
	}

	totalBookings := 200
	now := time.Now()
	var bookings []interface{}
	for i := 1; i <= totalBookings; i++ {
		// Spread createdAt over the last 30 days so the weekly figures and
		// the 7-day chart both have data.
		createdAt := now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour)
		amount := float64(300+rand.Intn(2200)) + []float64{0, 0.5}[rand.Intn(2)]

		bookings = append(bookings, models.Booking{
			BookingRefNo:      fmt.Sprintf("BR-%05d", i),
			TransportPNR:      fmt.Sprintf("PNR%06d", 100000+rand.Intn(900000)),
			RazorpayPaymentID: "pay_" + uuid.New().String()[:14],
			Amount:            amount,
			Status:            pick(),
			CreatedAt:         createdAt,
			UpdatedAt:         createdAt,
		})
	}

	res, err := bookingColl.InsertMany(ctx, bookings)
	if err != nil {
		log.Fatalf("Failed to insert bookings: %v", err)
	}
	log.Printf("Seeded %d bookings", len(res.InsertedIDs))
}
