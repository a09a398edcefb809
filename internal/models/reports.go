package models

// SalesReport summarizes one show's sales for the admin dashboard.
// Revenue is based on the tier-adjusted current price.
type SalesReport struct {
	Show        string  `json:"show"`
	Revenue     float64 `json:"revenue"`
	SoldTickets int     `json:"sold_tickets"`
}

// PricingRecommendation aggregates tier-adjusted prices across an
// artist's shows. Both fields are nil when no show matched.
type PricingRecommendation struct {
	Suggestion *float64 `json:"suggestion"`
	Max        *float64 `json:"max"`
}

type RecommendPricingRequest struct {
	ArtistName string `json:"artist_name"`
}
