package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/pricing"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseService runs the purchase flow: resolve the buyer and the
// show, record the purchase, then recompute demand and reprice the
// show. The purchase write is the commit point; everything after it is
// best-effort and never rolls the purchase back.
type PurchaseService struct {
	users     models.UserRepo
	shows     models.ShowRepo
	venues    models.VenueRepo
	purchases models.PurchaseRepo
	logger    *slog.Logger
}

func NewPurchaseService(
	users models.UserRepo,
	shows models.ShowRepo,
	venues models.VenueRepo,
	purchases models.PurchaseRepo,
	logger *slog.Logger,
) *PurchaseService {
	return &PurchaseService{
		users:     users,
		shows:     shows,
		venues:    venues,
		purchases: purchases,
		logger:    logger,
	}
}

func (ps *PurchaseService) MakePurchase(ctx context.Context, userID string, req *models.PurchaseRequest) (*models.Receipt, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}

	// Defensive: a valid token should always map to a stored user.
	user, err := ps.users.GetUserByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	showID, err := primitive.ObjectIDFromHex(req.ConcertID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid concert id", models.ErrValidation)
	}

	show, err := ps.shows.GetShowByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", req.ConcertID, err)
	}

	purchase := &models.Purchase{
		UserID:     user.ID,
		ShowID:     show.ID,
		Seats:      req.Seats,
		Date:       time.Now().Format("2006-01-02"),
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
	}

	purchaseID, err := ps.purchases.InsertPurchase(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("recording purchase: %v", err)
	}
	purchase.ID = purchaseID

	price := ps.repriceShow(ctx, show)

	if err := ps.users.AppendPurchase(ctx, user.ID, purchaseID); err != nil {
		ps.logger.Warn("failed to append purchase to user record",
			"user_id", userID,
			"purchase_id", purchaseID.Hex(),
			"error", err,
		)
	}

	return &models.Receipt{Purchase: purchase, Price: price}, nil
}

// repriceShow sums seats sold across all purchases of the show
// (including the one just written), applies the demand multiplier to
// the show's base price and stores the result as the displayed price.
// The purchase is already committed by the time this runs, so failures
// here are logged and the stored price is left stale rather than
// failing the request.
func (ps *PurchaseService) repriceShow(ctx context.Context, show *models.Show) float64 {
	sold, err := ps.purchases.CountSeatsSold(ctx, show.ID)
	if err != nil {
		ps.logger.Error("failed to count seats sold, price not updated",
			"show_id", show.ID.Hex(), "error", err)
		return show.Price
	}

	venue, err := ps.venues.GetVenueByID(ctx, show.VenueID)
	if err != nil {
		ps.logger.Error("failed to resolve venue, price not updated",
			"show_id", show.ID.Hex(), "venue_id", show.VenueID.Hex(), "error", err)
		return show.Price
	}

	adjusted := pricing.AdjustedPrice(show.BasePrice, sold, venue.SeatCount())

	if err := ps.shows.UpdateShowPrice(ctx, show.ID, adjusted); err != nil {
		ps.logger.Warn("failed to persist adjusted price, stored price is stale",
			"show_id", show.ID.Hex(), "price", adjusted, "error", err)
	}
	return adjusted
}

// ListUserPurchases returns every purchase made by the given user.
func (ps *PurchaseService) ListUserPurchases(ctx context.Context, userID string) ([]*models.Purchase, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	return ps.purchases.ListPurchasesByUser(ctx, uid)
}
