package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Show links an artist to a venue on a date. BasePrice is set once at
// creation and never mutated; Price starts equal to BasePrice and is
// overwritten by the pricing engine after each purchase, so Price >=
// BasePrice holds at all times.
type Show struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArtistID  primitive.ObjectID `bson:"artist" json:"artist"`
	VenueID   primitive.ObjectID `bson:"venue" json:"venue"`
	BasePrice float64            `bson:"base_price" json:"base_price"`
	Price     float64            `bson:"price" json:"price"`
	Date      string             `bson:"date" json:"date"`
}

type ShowRequest struct {
	ArtistID string  `json:"artist_id" binding:"required"`
	VenueID  string  `json:"venue_id" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
}
