package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder. Password holds a bcrypt hash and is never
// serialized into responses. Purchases is append-only: ids are pushed
// as purchases are made, entries are never removed.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Email      string               `bson:"email" json:"email"`
	Password   string               `bson:"password" json:"-"`
	PassportID string               `bson:"passport_id" json:"passport_id"`
	Admin      bool                 `bson:"admin" json:"admin"`
	Purchases  []primitive.ObjectID `bson:"purchases" json:"purchases"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	PassportID string `json:"passport_id" binding:"required"`
}

type LoginRequest struct {
	PassportID string `json:"passport_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
