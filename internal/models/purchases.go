package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Seat struct {
	Row    int `bson:"row" json:"row"`
	Number int `bson:"number" json:"number"`
}

// Purchase is written exactly once per purchase request and never
// mutated or deleted afterwards.
type Purchase struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	ShowID     primitive.ObjectID `bson:"concert" json:"concert"`
	Seats      []Seat             `bson:"seats" json:"seats"`
	Date       string             `bson:"date" json:"date"`
	CardNumber string             `bson:"card_number" json:"card_number"`
	ExpiryDate string             `bson:"expiry_date" json:"expiry_date"`
	CVV        string             `bson:"cvv" json:"cvv"`
}

type PurchaseRequest struct {
	Seats      []Seat `json:"seats" binding:"required,min=1"`
	ConcertID  string `json:"concert_id" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// Receipt is the purchase response body: the stored purchase plus the
// price that was charged for it.
type Receipt struct {
	Purchase *Purchase `json:"purchase"`
	Price    float64   `json:"price"`
}

// Customer is the subset of user fields embedded into admin purchase
// listings.
type Customer struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	PassportID string `bson:"passport_id" json:"passport_id"`
}

type PurchaseWithCustomer struct {
	Purchase `bson:",inline"`
	Customer *Customer `bson:"customer,omitempty" json:"customer,omitempty"`
}
