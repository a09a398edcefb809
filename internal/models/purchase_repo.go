package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PurchaseRepo interface {
	InsertPurchase(ctx context.Context, purchase *Purchase) (primitive.ObjectID, error)
	ListPurchasesByUser(ctx context.Context, userID primitive.ObjectID) ([]*Purchase, error)
	ListPurchasesByShow(ctx context.Context, showID primitive.ObjectID) ([]*Purchase, error)
	CountSeatsSold(ctx context.Context, showID primitive.ObjectID) (int, error)
	ListAllPurchases(ctx context.Context) ([]*PurchaseWithCustomer, error)
}

func (mdb *MongodbRepo) InsertPurchase(ctx context.Context, purchase *Purchase) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, PurchasesCollection)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, purchase)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting purchase: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) ListPurchasesByUser(ctx context.Context, userID primitive.ObjectID) ([]*Purchase, error) {
	return mdb.findPurchases(ctx, bson.M{"user": userID})
}

func (mdb *MongodbRepo) ListPurchasesByShow(ctx context.Context, showID primitive.ObjectID) ([]*Purchase, error) {
	return mdb.findPurchases(ctx, bson.M{"concert": showID})
}

func (mdb *MongodbRepo) findPurchases(ctx context.Context, filter bson.M) ([]*Purchase, error) {
	col, err := mdb.GetCollection(ctx, PurchasesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %v", err)
	}
	defer cursor.Close(ctx)

	purchases := []*Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, fmt.Errorf("error decoding purchases: %v", err)
	}
	return purchases, nil
}

// CountSeatsSold sums the seat-list lengths across every purchase that
// references the show.
func (mdb *MongodbRepo) CountSeatsSold(ctx context.Context, showID primitive.ObjectID) (int, error) {
	purchases, err := mdb.ListPurchasesByShow(ctx, showID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, p := range purchases {
		total += len(p.Seats)
	}
	return total, nil
}

// ListAllPurchases returns every purchase with the buyer's contact
// details embedded, for the admin report. Users are fetched once and
// joined in memory.
func (mdb *MongodbRepo) ListAllPurchases(ctx context.Context) ([]*PurchaseWithCustomer, error) {
	purchases, err := mdb.findPurchases(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	usersCol, err := mdb.GetCollection(ctx, UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := usersCol.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}
	defer cursor.Close(ctx)

	users := map[primitive.ObjectID]*User{}
	for cursor.Next(ctx) {
		var u User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("error decoding user: %v", err)
		}
		users[u.ID] = &u
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	result := make([]*PurchaseWithCustomer, 0, len(purchases))
	for _, p := range purchases {
		entry := &PurchaseWithCustomer{Purchase: *p}
		if u, ok := users[p.UserID]; ok {
			entry.Customer = &Customer{
				Name:       u.Name,
				Email:      u.Email,
				PassportID: u.PassportID,
			}
		}
		result = append(result, entry)
	}
	return result, nil
}
