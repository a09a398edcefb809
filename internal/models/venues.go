package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Venue seating is a grid of Rows x Seats. Capacity is the figure the
// admin asked for; the grid derived from it is what pricing uses, so
// SeatCount is the authoritative capacity everywhere demand is
// computed.
type Venue struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Capacity int                `bson:"capacity" json:"capacity"`
	Rows     int                `bson:"rows" json:"rows"`
	Seats    int                `bson:"seats" json:"seats"`
}

// SeatCount returns rows x seats-per-row.
func (v *Venue) SeatCount() int {
	return v.Rows * v.Seats
}

type VenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}
