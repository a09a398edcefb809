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

type ArtistRepo interface {
	CreateArtist(ctx context.Context, artist *Artist) (primitive.ObjectID, error)
	GetArtistByID(ctx context.Context, id primitive.ObjectID) (*Artist, error)
	GetArtistByName(ctx context.Context, name string) (*Artist, error)
	ListArtists(ctx context.Context) ([]*Artist, error)
	UpdateArtist(ctx context.Context, id primitive.ObjectID, artist *Artist) error
	DeleteArtist(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateArtist(ctx context.Context, artist *Artist) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, artist)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting artist: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) GetArtistByID(ctx context.Context, id primitive.ObjectID) (*Artist, error) {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var artist Artist
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding artist: %v", err)
	}
	return &artist, nil
}

// GetArtistByName matches the whole name case-insensitively.
func (mdb *MongodbRepo) GetArtistByName(ctx context.Context, name string) (*Artist, error) {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}

	var artist Artist
	if err := col.FindOne(ctx, filter).Decode(&artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding artist by name: %v", err)
	}
	return &artist, nil
}

func (mdb *MongodbRepo) ListArtists(ctx context.Context) ([]*Artist, error) {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing artists: %v", err)
	}
	defer cursor.Close(ctx)

	artists := []*Artist{}
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("error decoding artists: %v", err)
	}
	return artists, nil
}

func (mdb *MongodbRepo) UpdateArtist(ctx context.Context, id primitive.ObjectID, artist *Artist) error {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{
		"name":  artist.Name,
		"genre": artist.Genre,
	}}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating artist: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteArtist(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, ArtistsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting artist: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
