package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stagepass/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedShow puts a venue with the given grid and a show at basePrice
// into the store and returns both.
func seedShow(f *fakeStore, rows, seats int, basePrice float64) (*models.Venue, *models.Show) {
	venue := &models.Venue{
		ID:       primitive.NewObjectID(),
		Name:     "Arena",
		Capacity: rows * seats,
		Rows:     rows,
		Seats:    seats,
	}
	f.venues[venue.ID] = venue

	show := &models.Show{
		ID:        primitive.NewObjectID(),
		ArtistID:  primitive.NewObjectID(),
		VenueID:   venue.ID,
		BasePrice: basePrice,
		Price:     basePrice,
		Date:      "2026-10-01",
	}
	f.shows[show.ID] = show
	return venue, show
}

func seedUser(f *fakeStore) *models.User {
	user := &models.User{
		ID:         primitive.NewObjectID(),
		Name:       "Dana",
		Email:      "dana@example.com",
		PassportID: "123456782",
		Purchases:  []primitive.ObjectID{},
	}
	f.users[user.ID] = user
	return user
}

func purchaseRequest(showID primitive.ObjectID, seats ...models.Seat) *models.PurchaseRequest {
	return &models.PurchaseRequest{
		Seats:      seats,
		ConcertID:  showID.Hex(),
		CardNumber: "4111111111111111",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestMakePurchaseRepricesShowAtFullDemand(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 2, 5, 100) // capacity 10
	user := seedUser(f)

	// 9 of 10 seats already sold.
	prior := make([]models.Seat, 9)
	for i := range prior {
		prior[i] = models.Seat{Row: 1, Number: i + 1}
	}
	f.purchases = append(f.purchases, &models.Purchase{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		ShowID: show.ID,
		Seats:  prior,
	})

	ps := NewPurchaseService(f, f, f, f, testLogger())
	receipt, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, models.Seat{Row: 2, Number: 5}))
	require.NoError(t, err)

	// 10/10 sold -> 100% demand -> 1.4 multiplier on the base price.
	assert.Equal(t, 140.0, receipt.Price)
	assert.Equal(t, 140.0, show.Price)
	assert.Equal(t, 100.0, show.BasePrice)

	require.NotNil(t, receipt.Purchase)
	assert.Equal(t, user.ID, receipt.Purchase.UserID)
	assert.Equal(t, show.ID, receipt.Purchase.ShowID)
	assert.Equal(t, time.Now().Format("2006-01-02"), receipt.Purchase.Date)

	// Purchase persisted and appended to the user's list.
	assert.Len(t, f.purchases, 2)
	assert.Contains(t, user.Purchases, receipt.Purchase.ID)
}

func TestMakePurchaseHalfDemand(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 2, 5, 100)
	user := seedUser(f)

	seats := make([]models.Seat, 5)
	for i := range seats {
		seats[i] = models.Seat{Row: 1, Number: i + 1}
	}

	ps := NewPurchaseService(f, f, f, f, testLogger())
	receipt, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, seats...))
	require.NoError(t, err)

	// 5/10 sold -> the 50% boundary maps to the 1.1 tier.
	assert.InDelta(t, 110, receipt.Price, 1e-9)
	assert.InDelta(t, 110, show.Price, 1e-9)
}

func TestMakePurchaseBelowTierKeepsBasePrice(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 10, 10, 80)
	user := seedUser(f)

	ps := NewPurchaseService(f, f, f, f, testLogger())
	receipt, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, models.Seat{Row: 1, Number: 1}))
	require.NoError(t, err)

	assert.Equal(t, 80.0, receipt.Price)
	assert.Equal(t, 80.0, show.Price)
}

func TestMakePurchaseZeroCapacityVenue(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 0, 0, 100)
	user := seedUser(f)

	ps := NewPurchaseService(f, f, f, f, testLogger())
	receipt, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, models.Seat{Row: 1, Number: 1}))
	require.NoError(t, err)

	// Degenerate capacity yields zero demand and no adjustment.
	assert.Equal(t, 100.0, receipt.Price)
	assert.Equal(t, 100.0, show.Price)
}

func TestMakePurchaseShowNotFound(t *testing.T) {
	f := newFakeStore()
	user := seedUser(f)

	ps := NewPurchaseService(f, f, f, f, testLogger())
	_, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(primitive.NewObjectID(), models.Seat{Row: 1, Number: 1}))

	require.ErrorIs(t, err, models.ErrNotFound)
	// Aborts before any write.
	assert.Empty(t, f.purchases)
	assert.Empty(t, user.Purchases)
}

func TestMakePurchaseUserNotFound(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 2, 5, 100)

	ps := NewPurchaseService(f, f, f, f, testLogger())
	_, err := ps.MakePurchase(context.Background(), primitive.NewObjectID().Hex(), purchaseRequest(show.ID, models.Seat{Row: 1, Number: 1}))

	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Empty(t, f.purchases)
}

func TestMakePurchasePriceUpdateFailureDoesNotRollBack(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 2, 5, 100)
	user := seedUser(f)
	f.failPriceUpdate = true

	seats := make([]models.Seat, 10)
	for i := range seats {
		seats[i] = models.Seat{Row: 1, Number: i + 1}
	}

	ps := NewPurchaseService(f, f, f, f, testLogger())
	receipt, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, seats...))
	require.NoError(t, err)

	// The purchase is committed and the charged price reflects the new
	// demand even though the stored price is now stale.
	assert.Equal(t, 140.0, receipt.Price)
	assert.Equal(t, 100.0, show.Price)
	assert.Len(t, f.purchases, 1)
}

func TestListUserPurchases(t *testing.T) {
	f := newFakeStore()
	_, show := seedShow(f, 2, 5, 100)
	user := seedUser(f)

	ps := NewPurchaseService(f, f, f, f, testLogger())
	_, err := ps.MakePurchase(context.Background(), user.ID.Hex(), purchaseRequest(show.ID, models.Seat{Row: 1, Number: 1}))
	require.NoError(t, err)

	purchases, err := ps.ListUserPurchases(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, show.ID, purchases[0].ShowID)
}
