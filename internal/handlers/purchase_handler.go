package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/services"
)

func MakePurchase(ps *services.PurchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized", models.ErrUnauthorized))
			return
		}

		var req models.PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Purchase failed", err)
			return
		}

		receipt, err := ps.MakePurchase(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			respondError(c, "Purchase failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(receipt, "Purchase successful"))
	}
}

func ListMyPurchases(ps *services.PurchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized", models.ErrUnauthorized))
			return
		}

		purchases, err := ps.ListUserPurchases(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, "Fetching purchases failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(purchases, "Purchases fetched successfully"))
	}
}
