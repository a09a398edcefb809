package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/models"
	"github.com/stagepass/api/internal/services"
)

func RegisterUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Register failed", err)
			return
		}

		userID, err := u.Register(c.Request.Context(), &req)
		if err != nil {
			respondError(c, "Register failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"user_id": userID}, "User registered"))
	}
}

func LoginUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, "Login failed", err)
			return
		}

		token, err := u.Login(c.Request.Context(), &req)
		if err != nil {
			respondError(c, "Login failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(token, "Logged in successfully"))
	}
}

func Me(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized", models.ErrUnauthorized))
			return
		}

		user, err := u.GetProfile(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, "Fetching user details failed", err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Fetched user details successfully"))
	}
}
