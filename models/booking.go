package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed appointment record owned by the persistence
// collaborator once created.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	ServiceIDs  []string      `bson:"serviceIds" json:"serviceIds"`
	StaffID     string        `bson:"staffId" json:"staffId"`
	Date        string        `bson:"date" json:"date"`               // "2006-01-02"
	StartMinute int           `bson:"startMinute" json:"startMinute"` // minutes from midnight
	EndMinute   int           `bson:"endMinute" json:"endMinute"`
	TotalPrice  float64       `bson:"totalPrice" json:"totalPrice"`
	DurationMin int           `bson:"durationMin" json:"durationMin"`
	Status      BookingStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the finalized draft handed to the submission
// service: ids plus the confirmed date and start time.
type BookingRequest struct {
	ServiceIDs  []string `json:"serviceIds"`
	StaffID     string   `json:"staffId"`
	Date        string   `json:"date"` // "2006-01-02"
	StartMinute int      `json:"startMinute"`
	DurationMin int      `json:"durationMin"`
	TotalPrice  float64  `json:"totalPrice"`
}
