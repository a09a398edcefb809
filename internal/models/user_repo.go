package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (primitive.ObjectID, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByPassportID(ctx context.Context, passportID string) (*User, error)
	GetUserByEmailOrPassport(ctx context.Context, email, passportID string) (*User, error)
	AppendPurchase(ctx context.Context, userID, purchaseID primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, UsersCollection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting user: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return mdb.findUser(ctx, bson.M{"_id": id})
}

func (mdb *MongodbRepo) GetUserByPassportID(ctx context.Context, passportID string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"passport_id": passportID})
}

func (mdb *MongodbRepo) GetUserByEmailOrPassport(ctx context.Context, email, passportID string) (*User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"passport_id": passportID},
	}}
	return mdb.findUser(ctx, filter)
}

func (mdb *MongodbRepo) findUser(ctx context.Context, filter bson.M) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	if err := col.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) AppendPurchase(ctx context.Context, userID, purchaseID primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, UsersCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"purchases": purchaseID}},
	)
	if err != nil {
		return fmt.Errorf("error appending purchase to user: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
