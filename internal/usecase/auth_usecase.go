// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/trinex-it/blackout/internal/domain/entity"
)

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Subject    string // Username or email.
	Password   string
	RememberMe bool
	TOTPCode   string // Required only when the account has 2FA enabled.
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Active      bool
	Authorities []string
}

// SignupInput is the self-service registration request.
type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// AuthOutput is the result of a login or refresh.
// When NeedOTP is set no tokens are issued and the client must retry with a TOTP code.
type AuthOutput struct {
	NeedOTP                bool
	AccessToken            string
	RefreshToken           string
	AccessTokenExpiration  time.Duration
	RefreshTokenExpiration time.Duration
}

// AuthStatus describes the authenticated principal of the current request.
type AuthStatus struct {
	ID        int64
	Username  string
	Role      string // Primary authority.
	FirstName string
	LastName  string
}

// AuthUsecase defines the login, refresh, registration and status operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Signup(ctx context.Context, input *SignupInput) (*entity.Account, error)
	Status(ctx context.Context) (*AuthStatus, error)
	// LoadPrincipal resolves a subject to the principal of a live, active account.
	LoadPrincipal(ctx context.Context, subject string) (*entity.UserPrincipal, error)
}
