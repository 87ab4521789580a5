package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/minimart/minimart/common/auth"
	"github.com/minimart/minimart/common/metrics"
)

type service struct {
	store    UserStore
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	validate *validator.Validate
	metrics  *metrics.BusinessMetrics
	logger   *slog.Logger
}

func NewService(store UserStore, hasher *auth.Hasher, tokens *auth.TokenManager, m *metrics.BusinessMetrics, logger *slog.Logger) *service {
	return &service{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
		metrics:  m,
		logger:   logger,
	}
}

// SignUp registers the email and signs the new user in. The password
// never touches the store in the clear.
func (s *service) SignUp(ctx context.Context, req SignRequest) (*SignResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Email, hash, time.Now().UnixMilli())
	if err != nil {
		return nil, err
	}
	s.metrics.SignupsTotal.Inc()

	s.logger.Info("user signed up", slog.String("uid", userID.String()))
	return s.signResponse(userID)
}

// SignIn checks the credentials. Unknown email and wrong password both
// come back as ErrInvalidCredentials.
func (s *service) SignIn(ctx context.Context, req SignRequest) (*SignResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.metrics.SigninsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.metrics.SigninsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	s.metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return s.signResponse(user.ID)
}

func (s *service) signResponse(userID uuid.UUID) (*SignResponse, error) {
	token, err := s.tokens.Sign(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &SignResponse{
		UID: userID,
		Token: TokenPayload{
			AccessToken: token,
			TokenType:   "Bearer",
		},
	}, nil
}
