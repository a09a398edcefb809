package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShowRepo interface {
	CreateShow(ctx context.Context, show *Show) (primitive.ObjectID, error)
	GetShowByID(ctx context.Context, id primitive.ObjectID) (*Show, error)
	ListShows(ctx context.Context) ([]*Show, error)
	UpdateShow(ctx context.Context, id primitive.ObjectID, show *Show) error
	UpdateShowPrice(ctx context.Context, id primitive.ObjectID, price float64) error
	DeleteShow(ctx context.Context, id primitive.ObjectID) error
	AnyShowForVenue(ctx context.Context, venueID primitive.ObjectID) (bool, error)
	AnyShowForArtist(ctx context.Context, artistID primitive.ObjectID) (bool, error)
}

func (mdb *MongodbRepo) CreateShow(ctx context.Context, show *Show) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, show)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting show: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) GetShowByID(ctx context.Context, id primitive.ObjectID) (*Show, error) {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var show Show
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&show); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding show: %v", err)
	}
	return &show, nil
}

func (mdb *MongodbRepo) ListShows(ctx context.Context) ([]*Show, error) {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing shows: %v", err)
	}
	defer cursor.Close(ctx)

	shows := []*Show{}
	if err := cursor.All(ctx, &shows); err != nil {
		return nil, fmt.Errorf("error decoding shows: %v", err)
	}
	return shows, nil
}

// UpdateShow never touches base_price; that field is immutable after
// creation.
func (mdb *MongodbRepo) UpdateShow(ctx context.Context, id primitive.ObjectID, show *Show) error {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{
		"artist": show.ArtistID,
		"venue":  show.VenueID,
		"price":  show.Price,
		"date":   show.Date,
	}}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating show: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) UpdateShowPrice(ctx context.Context, id primitive.ObjectID, price float64) error {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"price": price}},
	)
	if err != nil {
		return fmt.Errorf("error updating show price: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) DeleteShow(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting show: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) AnyShowForVenue(ctx context.Context, venueID primitive.ObjectID) (bool, error) {
	return mdb.anyShow(ctx, bson.M{"venue": venueID})
}

func (mdb *MongodbRepo) AnyShowForArtist(ctx context.Context, artistID primitive.ObjectID) (bool, error) {
	return mdb.anyShow(ctx, bson.M{"artist": artistID})
}

func (mdb *MongodbRepo) anyShow(ctx context.Context, filter bson.M) (bool, error) {
	col, err := mdb.GetCollection(ctx, ShowsCollection)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	var show Show
	err = col.FindOne(ctx, filter).Decode(&show)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("error checking for shows: %v", err)
	}
	return true, nil
}
