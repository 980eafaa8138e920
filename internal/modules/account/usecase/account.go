package usecase

import (
	"context"

	"incubator/internal/modules/account/domain"
	"incubator/internal/modules/account/dto"
	accountin "incubator/internal/modules/account/port/in"
	"incubator/internal/modules/account/service"
)

type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) accountin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error) {
	user, err := i.svc.Login(ctx, input.Token)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) CurrentUser(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.CurrentUser(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

func (i *Interactor) Landing(ctx context.Context) (dto.LandingOutput, error) {
	user, destination, err := i.svc.Landing(ctx)
	if err != nil {
		return dto.LandingOutput{}, err
	}
	return dto.LandingOutput{User: toUserOutput(user), Destination: string(destination)}, nil
}

func (i *Interactor) MarkStartupPromptSeen(ctx context.Context) error {
	return i.svc.MarkStartupPromptSeen(ctx)
}

func toUserOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        u.ID,
		Name:      u.Name(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		ProjectID: u.ProjectID,
		ExpiresAt: u.ExpiresAt,
	}
}
