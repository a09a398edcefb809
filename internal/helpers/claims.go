package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every bearer token: the account id,
// the government id it was registered with, and the admin flag.
type Claims struct {
	UserID     string `json:"user_id"`
	PassportID string `json:"passport_id"`
	Admin      bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Admin
}

func (c *Claims) IsOwner(userID string) bool {
	return c.UserID == userID
}
