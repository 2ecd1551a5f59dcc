// File: database/repository/booking/booking.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbook/database"
	"salonbook/models"
)

// BookingRepository persists confirmed bookings and serves the existing
// bookings that drive slot availability.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListForStaffOnDate(ctx context.Context, staffID, date string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

// ListForStaffOnDate returns the non-cancelled bookings occupying a
// stylist's day, ordered by start time.
func (r *mongoBookingRepo) ListForStaffOnDate(ctx context.Context, staffID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId": staffID,
		"date":    date,
		"status":  bson.M{"$ne": models.BookingStatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
