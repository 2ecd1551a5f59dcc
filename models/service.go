package models

// Service is a bookable salon treatment. Immutable once fetched from the catalog.
type Service struct {
	ID          string  `bson:"id" json:"id" validate:"required"`
	Name        string  `bson:"name" json:"name" validate:"required"`
	Category    string  `bson:"category" json:"category"`
	DurationMin int     `bson:"durationMin" json:"durationMin" validate:"gt=0"` // minutes
	Price       float64 `bson:"price" json:"price" validate:"gte=0"`
	Active      bool    `bson:"active" json:"active"`
}

// Staff is a stylist who can be assigned to a booking. Immutable once fetched.
type Staff struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Specialization string `bson:"specialization" json:"specialization"`
	Role           string `bson:"role" json:"role"` // e.g. "stylist"
}
