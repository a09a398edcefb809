package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/stagepass/api/internal/helpers"
	"github.com/stagepass/api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users     models.UserRepo
	jwtSecret string
}

func NewUserService(users models.UserRepo, jwtSecret string) *UserService {
	return &UserService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new account. The government id checksum is
// verified and uniqueness of email and passport id is checked before
// anything is written.
func (us *UserService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if !helpers.IsValidGovernmentID(req.PassportID) {
		return "", fmt.Errorf("%w: passport id has an invalid checksum", models.ErrValidation)
	}

	existing, err := us.users.GetUserByEmailOrPassport(ctx, req.Email, req.PassportID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return "", fmt.Errorf("checking existing users: %v", err)
	}
	if existing != nil {
		return "", fmt.Errorf("%w: user with email or passport id already exists", models.ErrConflict)
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		PassportID: req.PassportID,
		Admin:      false,
		Purchases:  []primitive.ObjectID{},
	}

	id, err := us.users.CreateUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("creating user: %v", err)
	}
	return id.Hex(), nil
}

// Login verifies credentials by passport id and issues a bearer token.
func (us *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := us.users.GetUserByPassportID(ctx, req.PassportID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: incorrect credentials", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("looking up user: %v", err)
	}

	if !helpers.VerifyPassword(user.Password, req.Password) {
		return nil, fmt.Errorf("%w: incorrect credentials", models.ErrUnauthorized)
	}

	token, err := helpers.IssueToken(us.jwtSecret, user.ID.Hex(), user.PassportID, user.Admin)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %v", err)
	}
	return &models.TokenResponse{Token: token}, nil
}

// GetProfile returns the account behind a token's user id.
func (us *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", models.ErrValidation)
	}
	user, err := us.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	return user, nil
}
