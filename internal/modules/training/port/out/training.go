package out

import (
	"context"

	"incubator/internal/modules/training/domain"
)

type WorkshopAPI interface {
	Upcoming(ctx context.Context) ([]domain.Workshop, error)
	Past(ctx context.Context) ([]domain.Workshop, error)
}
