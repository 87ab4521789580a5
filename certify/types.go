package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")

	// ErrInvalidCredentials covers unknown email and wrong password
	// alike; sign_in must not reveal which one failed.
	ErrInvalidCredentials = errors.New("wrong credentials")

	ErrValidation = errors.New("invalid sign request")
)

// User is one row of the users table. CreateTime is unix milliseconds.
type User struct {
	ID           uuid.UUID `json:"-"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"`
	CreateTime   int64     `json:"create_time"`
}

// SignRequest is the shared body of sign_up and sign_in.
type SignRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type TokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignResponse pairs the user id with a freshly minted bearer token.
type SignResponse struct {
	UID   uuid.UUID    `json:"uid"`
	Token TokenPayload `json:"token"`
}

type CertifyService interface {
	SignUp(ctx context.Context, req SignRequest) (*SignResponse, error)
	SignIn(ctx context.Context, req SignRequest) (*SignResponse, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string, createTime int64) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
