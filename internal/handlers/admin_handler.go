package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/services"
)

// Admin catalog management and reporting endpoints.

func CreateVenue(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to create venue", err)
			return
		}

		venue, err := cs.CreateVenue(c.Request.Context(), &req)
		if err != nil {
			respondError(c, "Failed to create venue", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Created venue successfully"))
	}
}

func UpdateVenue(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to update venue", err)
			return
		}

		venue, err := cs.UpdateVenue(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondError(c, "Failed to update venue", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Updated venue successfully"))
	}
}

func DeleteVenue(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteVenue(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, "Failed to delete venue", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Venue deleted successfully"))
	}
}

func CreateArtist(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ArtistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to create artist", err)
			return
		}

		artist, err := cs.CreateArtist(c.Request.Context(), &req)
		if err != nil {
			respondError(c, "Failed to create artist", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(artist, "Created artist successfully"))
	}
}

func UpdateArtist(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ArtistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to update artist", err)
			return
		}

		artist, err := cs.UpdateArtist(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondError(c, "Failed to update artist", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(artist, "Updated artist successfully"))
	}
}

func DeleteArtist(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteArtist(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, "Failed to delete artist", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Artist deleted successfully"))
	}
}

func CreateConcert(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ShowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to create concert", err)
			return
		}

		show, err := cs.CreateShow(c.Request.Context(), &req)
		if err != nil {
			respondError(c, "Failed to create concert", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(show, "Created concert successfully"))
	}
}

func UpdateConcert(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ShowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Failed to update concert", err)
			return
		}

		show, err := cs.UpdateShow(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondError(c, "Failed to update concert", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(show, "Updated concert successfully"))
	}
}

func DeleteConcert(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteShow(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, "Failed to delete concert", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Concert deleted successfully"))
	}
}

func ViewSales(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := cs.ViewSales(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, "Fetching sales failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(report, "Fetched sales successfully"))
	}
}

func RecommendPricing(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RecommendPricingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Pricing recommendation failed", err)
			return
		}

		rec, err := cs.RecommendPricing(c.Request.Context(), req.ArtistName)
		if err != nil {
			respondError(c, "Pricing recommendation failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rec, "Pricing recommendation computed"))
	}
}

func ListAllPurchases(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		purchases, err := cs.ListAllPurchases(c.Request.Context())
		if err != nil {
			respondError(c, "Fetching purchases failed", err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(purchases, "Purchases fetched successfully"))
	}
}
