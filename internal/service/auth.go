package service

import (
	"context"
	"errors"
	"time"

	"github.com/todoapp/todo-api-go/internal/crypto"
	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/repository"
)

var (
	ErrFieldsRequired = errors.New("name, username, password and email are required")
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("password is incorrect")
	ErrUsernameTaken  = errors.New("username already taken")
)

// AuthService handles registration and login.
type AuthService struct {
	users      *repository.UserRepository
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		bcryptCost: bcryptCost,
	}
}

// Register hashes the password and persists a new user.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Name == "" || req.Username == "" || req.Password == "" || req.Email == "" {
		return ErrFieldsRequired
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}

	return nil
}

// Login checks the credentials against the stored hash and returns a signed
// token carrying the user's identity claims.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !crypto.VerifyPassword(req.Password, user.Password) {
		return "", ErrWrongPassword
	}

	return crypto.GenerateToken(user.Name, user.Username, user.Email, s.jwtSecret, s.jwtExpiry)
}
