package in

import (
	"context"

	"incubator/internal/modules/account/dto"
	accountin "incubator/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, token string) (dto.UserOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Token: token})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.CurrentUser(ctx)
}

func (h CLIHandler) Landing(ctx context.Context) (dto.LandingOutput, error) {
	return h.usecase.Landing(ctx)
}

func (h CLIHandler) MarkStartupPromptSeen(ctx context.Context) error {
	return h.usecase.MarkStartupPromptSeen(ctx)
}
