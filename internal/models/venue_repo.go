package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VenueRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	GetVenueByName(ctx context.Context, name string) (*Venue, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, venue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting venue: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var venue Venue
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding venue: %v", err)
	}
	return &venue, nil
}

// GetVenueByName matches the whole name case-insensitively.
func (mdb *MongodbRepo) GetVenueByName(ctx context.Context, name string) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}

	var venue Venue
	if err := col.FindOne(ctx, filter).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding venue by name: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context) ([]*Venue, error) {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing venues: %v", err)
	}
	defer cursor.Close(ctx)

	venues := []*Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("error decoding venues: %v", err)
	}
	return venues, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *Venue) error {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{
		"name":     venue.Name,
		"capacity": venue.Capacity,
		"rows":     venue.Rows,
		"seats":    venue.Seats,
	}}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating venue: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, VenuesCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting venue: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
