package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/todokeeper/todokeeper-server/internal/logger"
	"github.com/todokeeper/todokeeper-server/internal/model"
)

type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Signup registers a new user and returns a session token for it.
// Email uniqueness is enforced by the store's constraint, not checked
// here first.
func (s *Auth) Signup(ctx context.Context, params model.SignupParams) (model.Session, error) {
	s.logger.Debug("Auth service: starting signup",
		"email", params.Email)

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	savedUser, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			s.logger.Info("Auth service: email already registered",
				"email", params.Email)
			return model.Session{}, model.ErrEmailTaken
		}
		s.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := s.tokens.Generate(savedUser.ID)
	if err != nil {
		s.logger.Error("Auth service: failed to generate token",
			"user_id", savedUser.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Auth service: signup completed",
		"user_id", savedUser.ID)

	return model.Session{Token: tokenString, User: savedUser}, nil
}

// Login verifies credentials and returns a session token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials.
func (s *Auth) Login(ctx context.Context, params model.LoginParams) (model.Session, error) {
	s.logger.Debug("Auth service: starting login",
		"email", params.Email)

	user, err := s.userStore.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		s.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.hasher.Verify(params.Password, user.PasswordHash) {
		return model.Session{}, model.ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.Error("Auth service: failed to generate token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return model.Session{Token: tokenString, User: user}, nil
}

// UpdateName changes the user's display name, the only mutable user
// field.
func (s *Auth) UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error) {
	user, err := s.userStore.UpdateName(ctx, id, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		s.logger.Error("Auth service: failed to update name",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update name: %w", err)
	}

	s.logger.Info("Auth service: name updated",
		"user_id", id)

	return user, nil
}
