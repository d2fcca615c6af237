package impl

import (
	"context"
	"testing"
	"time"

	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	mockRepo "github.com/trinex-it/blackout/internal/mocks/repository"
	mockSvc "github.com/trinex-it/blackout/internal/mocks/service"
	mockUsecase "github.com/trinex-it/blackout/internal/mocks/usecase"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	otpService   *mockSvc.MockOTPService
	current      *mockUsecase.MockCurrentPrincipal
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	otpService := mockSvc.NewMockOTPService(t)
	current := mockUsecase.NewMockCurrentPrincipal(t)

	service := NewAuthService(AuthServiceParams{
		AccountRepo:      accountRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		OTPService:       otpService,
		CurrentPrincipal: current,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
		Clock:            fixedClock,
	})

	return authServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		otpService:   otpService,
		current:      current,
	}
}

func principalFor(subject string, authID int64) any {
	return mock.MatchedBy(func(p entity.Principal) bool {
		return p.Identity().Subject == subject && p.Identity().AuthID == authID
	})
}

func (f authServiceFixtures) expectTokenPair() {
	f.tokenService.EXPECT().
		Issue(principalFor("alice", 42), entity.TokenTypeAccess, 15*time.Minute).
		Return("access-token", nil).Once()
	f.tokenService.EXPECT().
		Issue(principalFor("alice", 42), entity.TokenTypeRefresh, 720*time.Hour).
		Return("refresh-token", nil).Once()
}

func TestAuthService_Login_Success(t *testing.T) {
	tests := []struct {
		name              string
		rememberMe        bool
		wantRefreshExpiry time.Duration
	}{
		{name: "remember me", rememberMe: true, wantRefreshExpiry: 720 * time.Hour},
		{name: "session only", rememberMe: false, wantRefreshExpiry: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTestAccount(), nil)
			fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)
			fx.expectTokenPair()

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw", RememberMe: tt.rememberMe})

			require.NoError(t, err)
			assert.False(t, output.NeedOTP)
			assert.Equal(t, "access-token", output.AccessToken)
			assert.Equal(t, "refresh-token", output.RefreshToken)
			assert.Equal(t, 15*time.Minute, output.AccessTokenExpiration)
			assert.Equal(t, tt.wantRefreshExpiry, output.RefreshTokenExpiration)
		})
	}
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := newTestAccount()
	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)
	fx.tokenService.EXPECT().Issue(principalFor("alice@example.com", 42), entity.TokenTypeAccess, mock.Anything).Return("a", nil)
	fx.tokenService.EXPECT().Issue(principalFor("alice@example.com", 42), entity.TokenTypeRefresh, mock.Anything).Return("r", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "a", output.AccessToken)
}

func TestAuthService_Login_RejectionsAreIndistinguishable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures, ctx context.Context)
	}{
		{
			name: "unknown subject",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrAccountNotFound)
				fx.accountRepo.EXPECT().FindByEmail(ctx, "alice").Return(nil, repository.ErrAccountNotFound)
				fx.hasher.EXPECT().Check("pw", timingPasswordHash).Return(false)
			},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTestAccount(), nil)
				fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(false)
			},
		},
		{
			name: "inactive account",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				account := newTestAccount()
				account.Active = false
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
				fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw"})

			assert.Nil(t, output)
			require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 401, appErr.HTTPCode())
			assert.Equal(t, domainerrors.CategoryUnauthorized, appErr.ErrorCode())
			assert.Equal(t, "Invalid username or password", appErr.Message())
		})
	}
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, dbErr)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw"})

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SecondFactor(t *testing.T) {
	newTFAAccount := func() *entity.Account {
		account := newTestAccount()
		account.EnableTFA("JBSWY3DPEHPK3PXP", []string{"r1"})

		return account
	}

	t.Run("challenge without code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTFAAccount(), nil)
		fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw"})

		require.NoError(t, err)
		assert.True(t, output.NeedOTP)
		assert.Empty(t, output.AccessToken)
		assert.Empty(t, output.RefreshToken)
	})

	t.Run("invalid code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTFAAccount(), nil)
		fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)
		fx.otpService.EXPECT().Verify("000000", "JBSWY3DPEHPK3PXP", testNow).Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw", TOTPCode: "000000"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTOTP)
	})

	t.Run("valid code", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTFAAccount(), nil)
		fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)
		fx.otpService.EXPECT().Verify("123456", "JBSWY3DPEHPK3PXP", testNow).Return(true)
		fx.expectTokenPair()

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Subject: "alice", Password: "pw", TOTPCode: "123456"})

		require.NoError(t, err)
		assert.False(t, output.NeedOTP)
		assert.Equal(t, "access-token", output.AccessToken)
	})
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Parse("r0").Return(&entity.Claims{
		Subject:   "alice",
		AuthID:    42,
		TokenType: entity.TokenTypeRefresh,
		ExpiresAt: testNow.Add(10 * time.Hour),
	}, nil)
	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTestAccount(), nil)
	fx.tokenService.EXPECT().Issue(principalFor("alice", 42), entity.TokenTypeAccess, 15*time.Minute).Return("a1", nil)

	output, err := fx.service.Refresh(ctx, "r0")

	require.NoError(t, err)
	assert.Equal(t, "a1", output.AccessToken)
	assert.Equal(t, "r0", output.RefreshToken)
	assert.Equal(t, 10*time.Hour, output.RefreshTokenExpiration)
	assert.False(t, output.NeedOTP)
}

func TestAuthService_Refresh_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "unparseable token",
			setup: func(fx authServiceFixtures, _ context.Context) {
				fx.tokenService.EXPECT().Parse("r0").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "access token presented",
			setup: func(fx authServiceFixtures, _ context.Context) {
				fx.tokenService.EXPECT().Parse("r0").Return(&entity.Claims{Subject: "alice", AuthID: 42, TokenType: entity.TokenTypeAccess}, nil)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "inactive account",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				account := newTestAccount()
				account.Active = false
				fx.tokenService.EXPECT().Parse("r0").Return(&entity.Claims{Subject: "alice", AuthID: 42, TokenType: entity.TokenTypeRefresh}, nil)
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
			},
			wantErr: domainerrors.ErrAccountNotActive,
		},
		{
			name: "deleted account",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenService.EXPECT().Parse("r0").Return(&entity.Claims{Subject: "alice", AuthID: 42, TokenType: entity.TokenTypeRefresh}, nil)
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrAccountNotFound)
				fx.accountRepo.EXPECT().FindByEmail(ctx, "alice").Return(nil, repository.ErrAccountNotFound)
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name: "subject reused by another account",
			setup: func(fx authServiceFixtures, ctx context.Context) {
				account := newTestAccount()
				account.ID = 43
				fx.tokenService.EXPECT().Parse("r0").Return(&entity.Claims{Subject: "alice", AuthID: 42, TokenType: entity.TokenTypeRefresh}, nil)
				fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(account, nil)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			output, err := fx.service.Refresh(ctx, "r0")

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("secret").Return("hashed_secret", nil)
		fx.accountRepo.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(_ context.Context, account *entity.Account) {
				account.ID = 7
			}).
			Return(nil)

		account, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username:    " bob ",
			Password:    "secret",
			Active:      true,
			Authorities: []string{"USER", " USER", ""},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), account.ID)
		assert.Equal(t, "bob", account.Username)
		assert.Equal(t, "hashed_secret", account.PasswordHash)
		assert.Equal(t, []string{"USER"}, account.Authorities)
	})

	t.Run("missing identifier", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "  ", Password: "secret"})

		assert.ErrorIs(t, err, domainerrors.ErrMissingIdentifier)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("secret").Return("hashed_secret", nil)
		fx.accountRepo.EXPECT().Save(ctx, mock.Anything).Return(&repository.DuplicateKeyError{
			Field: repository.FieldEmail,
			Value: "bob@example.com",
		})

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "bob@example.com", Password: "secret"})

		require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "An entry with email 'bob@example.com' already exists", appErr.Message())
	})

	t.Run("duplicate on unknown field", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("secret").Return("hashed_secret", nil)
		fx.accountRepo.EXPECT().Save(ctx, mock.Anything).Return(&repository.DuplicateKeyError{})

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "bob@example.com", Password: "secret"})

		require.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "A record with these values already exists", appErr.Message())
	})
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("passwords do not match", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
			Email:           "bob@example.com",
			Password:        "one",
			ConfirmPassword: "two",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordsDoNotMatch)
	})

	t.Run("creates active account with default role", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("secret").Return("hashed_secret", nil)
		fx.accountRepo.EXPECT().
			Save(ctx, mock.MatchedBy(func(a *entity.Account) bool {
				return a.Email == "bob@example.com" && a.Username == "" && a.Active &&
					len(a.Authorities) == 1 && a.Authorities[0] == "USER" && !a.TFAEnabled()
			})).
			Return(nil)

		account, err := fx.service.Signup(ctx, &usecase.SignupInput{
			Email:           "bob@example.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", account.Email)
	})
}

func TestAuthService_Status(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.current.EXPECT().Principal(ctx).Return(&entity.UserPrincipal{
			AuthID:      42,
			Subject:     "alice",
			FirstName:   "Alice",
			LastName:    "Liddell",
			Authorities: []string{"USER", "ADMIN"},
		}, nil)

		status, err := fx.service.Status(ctx)

		require.NoError(t, err)
		assert.Equal(t, &usecase.AuthStatus{
			ID:        42,
			Username:  "alice",
			Role:      "ADMIN",
			FirstName: "Alice",
			LastName:  "Liddell",
		}, status)
	})

	t.Run("no authorities", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.current.EXPECT().Principal(ctx).Return(&entity.UserPrincipal{AuthID: 42, Subject: "alice"}, nil)

		status, err := fx.service.Status(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.UnknownAuthority, status.Role)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.current.EXPECT().Principal(ctx).Return(nil, domainerrors.ErrUnauthenticated)

		_, err := fx.service.Status(ctx)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestAuthService_LoadPrincipal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTestAccount(), nil)

	principal, err := fx.service.LoadPrincipal(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.AuthID)
	assert.Equal(t, "alice", principal.Subject)
	assert.Equal(t, "Alice", principal.FirstName)
	assert.Equal(t, []string{"USER"}, principal.Authorities)
}
