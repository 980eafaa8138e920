package in

import (
	"context"

	"incubator/internal/modules/training/dto"
)

type Usecase interface {
	Upcoming(ctx context.Context) (dto.WorkshopListOutput, error)
	Past(ctx context.Context) (dto.WorkshopListOutput, error)
	Calendar(ctx context.Context) (dto.CalendarOutput, error)
}
