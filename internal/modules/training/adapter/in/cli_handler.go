package in

import (
	"context"

	"incubator/internal/modules/training/dto"
	trainingin "incubator/internal/modules/training/port/in"
)

type CLIHandler struct {
	usecase trainingin.Usecase
}

func NewCLIHandler(usecase trainingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, past bool) (dto.WorkshopListOutput, error) {
	if past {
		return h.usecase.Past(ctx)
	}
	return h.usecase.Upcoming(ctx)
}

func (h CLIHandler) Calendar(ctx context.Context) (dto.CalendarOutput, error) {
	return h.usecase.Calendar(ctx)
}
