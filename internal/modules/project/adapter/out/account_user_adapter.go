package out

import (
	"context"

	accountin "incubator/internal/modules/account/port/in"
	"incubator/internal/modules/project/domain"
	projectout "incubator/internal/modules/project/port/out"
)

// AccountUserAdapter exposes the logged-in account as a project owner.
type AccountUserAdapter struct {
	account accountin.Usecase
}

func NewAccountUserAdapter(account accountin.Usecase) projectout.UserSource {
	return &AccountUserAdapter{account: account}
}

func (a *AccountUserAdapter) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	name := user.Name
	if user.FirstName != "" {
		name = user.FirstName
	}
	return &domain.User{ID: user.ID, Name: name}, nil
}
