package impl

import (
	"context"

	deliverycontext "github.com/trinex-it/blackout/internal/delivery/context"
	"github.com/trinex-it/blackout/internal/domain/entity"
	domainerrors "github.com/trinex-it/blackout/internal/domain/errors"
	"github.com/trinex-it/blackout/internal/domain/repository"
	"github.com/trinex-it/blackout/internal/usecase"

	"github.com/pkg/errors"
)

type currentPrincipalService struct {
	accountRepo repository.AccountRepository
}

// NewCurrentPrincipalService reads the principal installed in the request context.
func NewCurrentPrincipalService(accountRepo repository.AccountRepository) usecase.CurrentPrincipal {
	return &currentPrincipalService{accountRepo: accountRepo}
}

func (srv *currentPrincipalService) Principal(ctx context.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(ctx)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return principal, nil
}

func (srv *currentPrincipalService) Account(ctx context.Context) (*entity.Account, error) {
	principal, err := srv.Principal(ctx)
	if err != nil {
		return nil, err
	}

	account, err := repository.FindBySubject(ctx, srv.accountRepo, principal.Identity().Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find current account")
	}

	return account, nil
}
