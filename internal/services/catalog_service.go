package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/pricing"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService manages venues, artists and shows, and serves the
// advisory sales and pricing reports.
type CatalogService struct {
	venues    models.VenueRepo
	artists   models.ArtistRepo
	shows     models.ShowRepo
	purchases models.PurchaseRepo
}

func NewCatalogService(
	venues models.VenueRepo,
	artists models.ArtistRepo,
	shows models.ShowRepo,
	purchases models.PurchaseRepo,
) *CatalogService {
	return &CatalogService{
		venues:    venues,
		artists:   artists,
		shows:     shows,
		purchases: purchases,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// seatGrid derives the seating grid from a requested capacity: rows is
// the integer square root, seats-per-row rounds up so the grid always
// covers the capacity.
func seatGrid(capacity int) (rows, seats int) {
	rows = int(math.Sqrt(float64(capacity)))
	if rows == 0 {
		return 0, 0
	}
	seats = (capacity + rows - 1) / rows
	return rows, seats
}

// --- venues ---

func (cs *CatalogService) CreateVenue(ctx context.Context, req *models.VenueRequest) (*models.Venue, error) {
	existing, err := cs.venues.GetVenueByName(ctx, req.Name)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("checking venue name: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a venue with the name %q already exists", models.ErrConflict, req.Name)
	}

	rows, seats := seatGrid(req.Capacity)
	venue := &models.Venue{
		Name:     req.Name,
		Capacity: req.Capacity,
		Rows:     rows,
		Seats:    seats,
	}
	if err := models.Validate.Struct(venue); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	id, err := cs.venues.CreateVenue(ctx, venue)
	if err != nil {
		return nil, fmt.Errorf("creating venue: %v", err)
	}
	venue.ID = id
	return venue, nil
}

func (cs *CatalogService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return cs.venues.ListVenues(ctx)
}

func (cs *CatalogService) UpdateVenue(ctx context.Context, venueID string, req *models.VenueRequest) (*models.Venue, error) {
	id, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}

	rows, seats := seatGrid(req.Capacity)
	venue := &models.Venue{
		ID:       id,
		Name:     req.Name,
		Capacity: req.Capacity,
		Rows:     rows,
		Seats:    seats,
	}

	if err := cs.venues.UpdateVenue(ctx, id, venue); err != nil {
		return nil, fmt.Errorf("venue %s: %w", venueID, err)
	}
	return venue, nil
}

// DeleteVenue refuses to remove a venue that still has shows booked.
func (cs *CatalogService) DeleteVenue(ctx context.Context, venueID string) error {
	id, err := primitive.ObjectIDFromHex(venueID)
	if err != nil {
		return fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}

	referenced, err := cs.shows.AnyShowForVenue(ctx, id)
	if err != nil {
		return fmt.Errorf("checking venue shows: %v", err)
	}
	if referenced {
		return fmt.Errorf("%w: venue %s is associated with one or more concerts", models.ErrConflict, venueID)
	}

	if err := cs.venues.DeleteVenue(ctx, id); err != nil {
		return fmt.Errorf("venue %s: %w", venueID, err)
	}
	return nil
}

// --- artists ---

func (cs *CatalogService) CreateArtist(ctx context.Context, req *models.ArtistRequest) (*models.Artist, error) {
	existing, err := cs.artists.GetArtistByName(ctx, req.Name)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("checking artist name: %v", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: an artist with the name %q already exists", models.ErrConflict, req.Name)
	}

	artist := &models.Artist{
		Name:  req.Name,
		Genre: req.Genre,
	}
	if err := models.Validate.Struct(artist); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	id, err := cs.artists.CreateArtist(ctx, artist)
	if err != nil {
		return nil, fmt.Errorf("creating artist: %v", err)
	}
	artist.ID = id
	return artist, nil
}

func (cs *CatalogService) ListArtists(ctx context.Context) ([]*models.Artist, error) {
	return cs.artists.ListArtists(ctx)
}

func (cs *CatalogService) UpdateArtist(ctx context.Context, artistID string, req *models.ArtistRequest) (*models.Artist, error) {
	id, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", models.ErrValidation)
	}

	artist := &models.Artist{
		ID:    id,
		Name:  req.Name,
		Genre: req.Genre,
	}

	if err := cs.artists.UpdateArtist(ctx, id, artist); err != nil {
		return nil, fmt.Errorf("artist %s: %w", artistID, err)
	}
	return artist, nil
}

// DeleteArtist refuses to remove an artist that still has shows booked.
func (cs *CatalogService) DeleteArtist(ctx context.Context, artistID string) error {
	id, err := primitive.ObjectIDFromHex(artistID)
	if err != nil {
		return fmt.Errorf("%w: invalid artist id", models.ErrValidation)
	}

	referenced, err := cs.shows.AnyShowForArtist(ctx, id)
	if err != nil {
		return fmt.Errorf("checking artist shows: %v", err)
	}
	if referenced {
		return fmt.Errorf("%w: artist %s is associated with one or more shows", models.ErrConflict, artistID)
	}

	if err := cs.artists.DeleteArtist(ctx, id); err != nil {
		return fmt.Errorf("artist %s: %w", artistID, err)
	}
	return nil
}

// --- shows ---

func (cs *CatalogService) CreateShow(ctx context.Context, req *models.ShowRequest) (*models.Show, error) {
	artistID, err := primitive.ObjectIDFromHex(req.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", models.ErrValidation)
	}
	venueID, err := primitive.ObjectIDFromHex(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}

	if _, err := cs.artists.GetArtistByID(ctx, artistID); err != nil {
		return nil, fmt.Errorf("artist %s: %w", req.ArtistID, err)
	}
	if _, err := cs.venues.GetVenueByID(ctx, venueID); err != nil {
		return nil, fmt.Errorf("venue %s: %w", req.VenueID, err)
	}

	show := &models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		BasePrice: req.Price,
		Price:     req.Price,
		Date:      req.Date,
	}

	id, err := cs.shows.CreateShow(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("creating show: %v", err)
	}
	show.ID = id
	return show, nil
}

func (cs *CatalogService) ListShows(ctx context.Context) ([]*models.Show, error) {
	return cs.shows.ListShows(ctx)
}

func (cs *CatalogService) UpdateShow(ctx context.Context, showID string, req *models.ShowRequest) (*models.Show, error) {
	id, err := primitive.ObjectIDFromHex(showID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid show id", models.ErrValidation)
	}
	artistID, err := primitive.ObjectIDFromHex(req.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid artist id", models.ErrValidation)
	}
	venueID, err := primitive.ObjectIDFromHex(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid venue id", models.ErrValidation)
	}

	show := &models.Show{
		ID:       id,
		ArtistID: artistID,
		VenueID:  venueID,
		Price:    req.Price,
		Date:     req.Date,
	}

	if err := cs.shows.UpdateShow(ctx, id, show); err != nil {
		return nil, fmt.Errorf("show %s: %w", showID, err)
	}
	return show, nil
}

func (cs *CatalogService) DeleteShow(ctx context.Context, showID string) error {
	id, err := primitive.ObjectIDFromHex(showID)
	if err != nil {
		return fmt.Errorf("%w: invalid show id", models.ErrValidation)
	}
	if err := cs.shows.DeleteShow(ctx, id); err != nil {
		return fmt.Errorf("show %s: %w", showID, err)
	}
	return nil
}

// UnavailableSeats flattens the seat numbers already purchased for a
// show. Clients consult this before picking seats; the purchase flow
// itself does not enforce it.
func (cs *CatalogService) UnavailableSeats(ctx context.Context, showID string) ([]int, error) {
	id, err := primitive.ObjectIDFromHex(showID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid show id", models.ErrValidation)
	}

	purchases, err := cs.purchases.ListPurchasesByShow(ctx, id)
	if err != nil {
		return nil, err
	}

	taken := []int{}
	for _, p := range purchases {
		for _, seat := range p.Seats {
			taken = append(taken, seat.Number)
		}
	}
	return taken, nil
}

// --- advisory reports ---

// ViewSales reports a show's sold seats and projected revenue. The
// projection reapplies the demand multiplier to the currently stored
// price, so repeated calls after purchases compound on top of earlier
// adjustments; the purchase path, by contrast, always starts from the
// base price.
func (cs *CatalogService) ViewSales(ctx context.Context, showID string) (*models.SalesReport, error) {
	id, err := primitive.ObjectIDFromHex(showID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid show id", models.ErrValidation)
	}

	show, err := cs.shows.GetShowByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", showID, err)
	}
	artist, err := cs.artists.GetArtistByID(ctx, show.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("artist %s: %w", show.ArtistID.Hex(), err)
	}
	venue, err := cs.venues.GetVenueByID(ctx, show.VenueID)
	if err != nil {
		return nil, fmt.Errorf("venue %s: %w", show.VenueID.Hex(), err)
	}

	sold, err := cs.purchases.CountSeatsSold(ctx, id)
	if err != nil {
		return nil, err
	}

	price := pricing.AdjustedPrice(show.Price, sold, venue.SeatCount())

	return &models.SalesReport{
		Show:        fmt.Sprintf("%s at %s on %s", artist.Name, venue.Name, show.Date),
		Revenue:     round2(float64(sold) * price),
		SoldTickets: sold,
	}, nil
}

// RecommendPricing surveys tier-adjusted prices across shows, filtered
// by artist name when one is given. Demand here counts purchase
// documents rather than individual seats, and the adjustment is
// applied to the currently stored price.
func (cs *CatalogService) RecommendPricing(ctx context.Context, artistName string) (*models.PricingRecommendation, error) {
	artists, err := cs.artists.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	artistsByID := map[primitive.ObjectID]*models.Artist{}
	for _, a := range artists {
		artistsByID[a.ID] = a
	}

	venues, err := cs.venues.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	venuesByID := map[primitive.ObjectID]*models.Venue{}
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	shows, err := cs.shows.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	prices := []float64{}
	for _, show := range shows {
		artist, ok := artistsByID[show.ArtistID]
		if !ok {
			continue
		}
		venue, ok := venuesByID[show.VenueID]
		if !ok {
			continue
		}
		if artistName != "" && !strings.EqualFold(artistName, artist.Name) {
			continue
		}

		purchases, err := cs.purchases.ListPurchasesByShow(ctx, show.ID)
		if err != nil {
			return nil, err
		}

		prices = append(prices, pricing.AdjustedPrice(show.Price, len(purchases), venue.SeatCount()))
	}

	if len(prices) == 0 {
		return &models.PricingRecommendation{}, nil
	}

	sum, max := 0.0, prices[0]
	for _, p := range prices {
		sum += p
		if p > max {
			max = p
		}
	}

	suggestion := round2(sum / float64(len(prices)) * 0.9)
	ceiling := round2(max * 1.1)
	return &models.PricingRecommendation{
		Suggestion: &suggestion,
		Max:        &ceiling,
	}, nil
}

// ListAllPurchases is the admin view of every purchase with customer
// details attached.
func (cs *CatalogService) ListAllPurchases(ctx context.Context) ([]*models.PurchaseWithCustomer, error) {
	return cs.purchases.ListAllPurchases(ctx)
}
