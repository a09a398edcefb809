package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/services"
)

// Public catalog endpoints.

func ListConcerts(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		shows, err := cs.ListShows(c.Request.Context())
		if err != nil {
			respondError(c, "Fetching concerts failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(shows, "Fetch concerts successfully"))
	}
}

func ListArtists(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		artists, err := cs.ListArtists(c.Request.Context())
		if err != nil {
			respondError(c, "Fetching artists failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(artists, "Fetch artists successfully"))
	}
}

func ListVenues(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := cs.ListVenues(c.Request.Context())
		if err != nil {
			respondError(c, "Fetching venues failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venues, "Fetch venues successfully"))
	}
}

func UnavailableSeats(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seats, err := cs.UnavailableSeats(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, "Fetching unavailable seats failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(seats, "Fetch unavailable seats successfully"))
	}
}
