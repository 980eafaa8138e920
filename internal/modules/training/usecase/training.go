package usecase

import (
	"context"

	"incubator/internal/modules/training/domain"
	"incubator/internal/modules/training/dto"
	trainingin "incubator/internal/modules/training/port/in"
	"incubator/internal/modules/training/service"
)

type Interactor struct {
	svc *service.TrainingService
}

func NewInteractor(svc *service.TrainingService) trainingin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Upcoming(ctx context.Context) (dto.WorkshopListOutput, error) {
	workshops, warnings, err := i.svc.Upcoming(ctx)
	if err != nil {
		return dto.WorkshopListOutput{}, err
	}
	return dto.WorkshopListOutput{Workshops: toOutputs(workshops), Warnings: warnings}, nil
}

func (i *Interactor) Past(ctx context.Context) (dto.WorkshopListOutput, error) {
	workshops, warnings, err := i.svc.Past(ctx)
	if err != nil {
		return dto.WorkshopListOutput{}, err
	}
	return dto.WorkshopListOutput{Workshops: toOutputs(workshops), Warnings: warnings}, nil
}

func (i *Interactor) Calendar(ctx context.Context) (dto.CalendarOutput, error) {
	upcoming, past, warnings, err := i.svc.Calendar(ctx)
	if err != nil {
		return dto.CalendarOutput{}, err
	}
	return dto.CalendarOutput{Upcoming: toOutputs(upcoming), Past: toOutputs(past), Warnings: warnings}, nil
}

func toOutputs(workshops []domain.Workshop) []dto.WorkshopOutput {
	out := make([]dto.WorkshopOutput, 0, len(workshops))
	for _, w := range workshops {
		out = append(out, dto.WorkshopOutput{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			Date:        w.Date,
			Time:        w.Time,
			Duration:    w.Duration,
			Location:    w.Location,
			Author:      w.Author,
		})
	}
	return out
}
