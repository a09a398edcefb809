package services

import (
	"context"
	"errors"
	"strings"

	"github.com/stagepass/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the Mongo-backed repositories
// so service logic can be exercised without a database.
type fakeStore struct {
	users     map[primitive.ObjectID]*models.User
	venues    map[primitive.ObjectID]*models.Venue
	artists   map[primitive.ObjectID]*models.Artist
	shows     map[primitive.ObjectID]*models.Show
	purchases []*models.Purchase

	failInsertPurchase bool
	failPriceUpdate    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[primitive.ObjectID]*models.User{},
		venues:  map[primitive.ObjectID]*models.Venue{},
		artists: map[primitive.ObjectID]*models.Artist{},
		shows:   map[primitive.ObjectID]*models.Show{},
	}
}

// --- UserRepo ---

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetUserByPassportID(ctx context.Context, passportID string) (*models.User, error) {
	for _, u := range f.users {
		if u.PassportID == passportID {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetUserByEmailOrPassport(ctx context.Context, email, passportID string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.PassportID == passportID {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) AppendPurchase(ctx context.Context, userID, purchaseID primitive.ObjectID) error {
	u, ok := f.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	u.Purchases = append(u.Purchases, purchaseID)
	return nil
}

// --- VenueRepo ---

func (f *fakeStore) CreateVenue(ctx context.Context, venue *models.Venue) (primitive.ObjectID, error) {
	venue.ID = primitive.NewObjectID()
	f.venues[venue.ID] = venue
	return venue.ID, nil
}

func (f *fakeStore) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetVenueByName(ctx context.Context, name string) (*models.Venue, error) {
	for _, v := range f.venues {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	venues := []*models.Venue{}
	for _, v := range f.venues {
		venues = append(venues, v)
	}
	return venues, nil
}

func (f *fakeStore) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *models.Venue) error {
	if _, ok := f.venues[id]; !ok {
		return models.ErrNotFound
	}
	f.venues[id] = venue
	return nil
}

func (f *fakeStore) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.venues[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.venues, id)
	return nil
}

// --- ArtistRepo ---

func (f *fakeStore) CreateArtist(ctx context.Context, artist *models.Artist) (primitive.ObjectID, error) {
	artist.ID = primitive.NewObjectID()
	f.artists[artist.ID] = artist
	return artist.ID, nil
}

func (f *fakeStore) GetArtistByID(ctx context.Context, id primitive.ObjectID) (*models.Artist, error) {
	if a, ok := f.artists[id]; ok {
		return a, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetArtistByName(ctx context.Context, name string) (*models.Artist, error) {
	for _, a := range f.artists {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListArtists(ctx context.Context) ([]*models.Artist, error) {
	artists := []*models.Artist{}
	for _, a := range f.artists {
		artists = append(artists, a)
	}
	return artists, nil
}

func (f *fakeStore) UpdateArtist(ctx context.Context, id primitive.ObjectID, artist *models.Artist) error {
	if _, ok := f.artists[id]; !ok {
		return models.ErrNotFound
	}
	f.artists[id] = artist
	return nil
}

func (f *fakeStore) DeleteArtist(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.artists[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.artists, id)
	return nil
}

// --- ShowRepo ---

func (f *fakeStore) CreateShow(ctx context.Context, show *models.Show) (primitive.ObjectID, error) {
	show.ID = primitive.NewObjectID()
	f.shows[show.ID] = show
	return show.ID, nil
}

func (f *fakeStore) GetShowByID(ctx context.Context, id primitive.ObjectID) (*models.Show, error) {
	if s, ok := f.shows[id]; ok {
		return s, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListShows(ctx context.Context) ([]*models.Show, error) {
	shows := []*models.Show{}
	for _, s := range f.shows {
		shows = append(shows, s)
	}
	return shows, nil
}

func (f *fakeStore) UpdateShow(ctx context.Context, id primitive.ObjectID, show *models.Show) error {
	existing, ok := f.shows[id]
	if !ok {
		return models.ErrNotFound
	}
	show.BasePrice = existing.BasePrice
	f.shows[id] = show
	return nil
}

func (f *fakeStore) UpdateShowPrice(ctx context.Context, id primitive.ObjectID, price float64) error {
	if f.failPriceUpdate {
		return errors.New("price update failed")
	}
	s, ok := f.shows[id]
	if !ok {
		return models.ErrNotFound
	}
	s.Price = price
	return nil
}

func (f *fakeStore) DeleteShow(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.shows[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.shows, id)
	return nil
}

func (f *fakeStore) AnyShowForVenue(ctx context.Context, venueID primitive.ObjectID) (bool, error) {
	for _, s := range f.shows {
		if s.VenueID == venueID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) AnyShowForArtist(ctx context.Context, artistID primitive.ObjectID) (bool, error) {
	for _, s := range f.shows {
		if s.ArtistID == artistID {
			return true, nil
		}
	}
	return false, nil
}

// --- PurchaseRepo ---

func (f *fakeStore) InsertPurchase(ctx context.Context, purchase *models.Purchase) (primitive.ObjectID, error) {
	if f.failInsertPurchase {
		return primitive.NilObjectID, errors.New("insert failed")
	}
	p := *purchase
	p.ID = primitive.NewObjectID()
	f.purchases = append(f.purchases, &p)
	return p.ID, nil
}

func (f *fakeStore) ListPurchasesByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Purchase, error) {
	result := []*models.Purchase{}
	for _, p := range f.purchases {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeStore) ListPurchasesByShow(ctx context.Context, showID primitive.ObjectID) ([]*models.Purchase, error) {
	result := []*models.Purchase{}
	for _, p := range f.purchases {
		if p.ShowID == showID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeStore) CountSeatsSold(ctx context.Context, showID primitive.ObjectID) (int, error) {
	total := 0
	for _, p := range f.purchases {
		if p.ShowID == showID {
			total += len(p.Seats)
		}
	}
	return total, nil
}

func (f *fakeStore) ListAllPurchases(ctx context.Context) ([]*models.PurchaseWithCustomer, error) {
	result := []*models.PurchaseWithCustomer{}
	for _, p := range f.purchases {
		entry := &models.PurchaseWithCustomer{Purchase: *p}
		if u, ok := f.users[p.UserID]; ok {
			entry.Customer = &models.Customer{
				Name:       u.Name,
				Email:      u.Email,
				PassportID: u.PassportID,
			}
		}
		result = append(result, entry)
	}
	return result, nil
}
