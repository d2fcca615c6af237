package usecase

import (
	"context"

	"github.com/trinex-it/blackout/internal/domain/entity"
)

// CurrentPrincipal gives request handlers access to the authenticated identity.
type CurrentPrincipal interface {
	// Principal returns the principal installed by the bearer middleware.
	Principal(ctx context.Context) (entity.Principal, error)
	// Account loads the account behind the current principal.
	Account(ctx context.Context) (*entity.Account, error)
}
