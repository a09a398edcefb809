package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name" validate:"required"`
	Genre string             `bson:"genre" json:"genre"`
}

type ArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	Genre string `json:"genre" binding:"required"`
}
