// File: database/repository/staff/staff.go
package staffRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbook/database"
	"salonbook/models"
)

// StaffRepository exposes the outlet's staff roster.
type StaffRepository interface {
	ListByRole(ctx context.Context, role string) ([]models.Staff, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a MongoDB-backed StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}

func (r *mongoStaffRepo) ListByRole(ctx context.Context, role string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"role": role}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}
