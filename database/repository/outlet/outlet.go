// File: database/repository/outlet/outlet.go
package outletRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

// OutletRepository exposes the outlet's weekly operating-hours configuration.
type OutletRepository interface {
	GetWorkingHours(ctx context.Context) ([]models.WorkingHours, error)
}

type mongoOutletRepo struct {
	coll *mongo.Collection
}

// NewMongoOutletRepo constructs a MongoDB-backed OutletRepository.
func NewMongoOutletRepo() OutletRepository {
	db := database.MongoClient.Database("salonbook")
	return &mongoOutletRepo{
		coll: db.Collection("working_hours"),
	}
}

func (r *mongoOutletRepo) GetWorkingHours(ctx context.Context) ([]models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hours []models.WorkingHours
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}
