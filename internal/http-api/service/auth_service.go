package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"winecellar/internal/http-api/middleware/auth"
	"winecellar/internal/http-api/models"
	"winecellar/internal/http-api/repository"

	"gorm.io/gorm"
)

// accessTokenBytes of randomness per token; hex-encoded on the wire.
const accessTokenBytes = 128

// dummyHash is compared against when the email is unknown so both login
// failure paths take roughly the same time.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

type AuthService interface {
	Register(ctx context.Context, name, surname, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context, userID string) error
	Resolve(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates an account and issues its first session token. The
// password is hashed here, explicitly, before anything is persisted.
func (s *authService) Register(ctx context.Context, name, surname, email, password string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        name,
		Surname:     surname,
		Email:       email,
		Password:    hashed,
		AccessToken: &token,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailInUse
		}
		return nil, storageErr(err)
	}
	return user, nil
}

// Login verifies the credentials and rotates the session token. The
// overwrite invalidates whatever token the user held before: one active
// session per account.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.VerifyPassword(dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, storageErr(err)
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateAccessToken(ctx, user.ID, &token); err != nil {
		return nil, storageErr(err)
	}

	user.AccessToken = &token
	return user, nil
}

// Logout clears the session token; any outstanding copy of it stops
// resolving immediately.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateAccessToken(ctx, userID, nil); err != nil {
		return storageErr(err)
	}
	return nil
}

// Resolve maps an opaque bearer token to the user holding it.
func (s *authService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	user, err := s.userRepo.FindByAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, storageErr(err)
	}
	return user, nil
}

func generateAccessToken() (string, error) {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
