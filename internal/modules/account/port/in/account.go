package in

import (
	"context"

	"incubator/internal/modules/account/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (dto.UserOutput, error)
	Landing(ctx context.Context) (dto.LandingOutput, error)
	MarkStartupPromptSeen(ctx context.Context) error
}
