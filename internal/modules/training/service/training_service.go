package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"incubator/internal/modules/training/domain"
	trainingout "incubator/internal/modules/training/port/out"
	"incubator/internal/platform/degrade"
)

type TrainingService struct {
	api    trainingout.WorkshopAPI
	policy degrade.Policy
}

func NewTrainingService(api trainingout.WorkshopAPI, policy degrade.Policy) *TrainingService {
	return &TrainingService{api: api, policy: policy}
}

func (s *TrainingService) Upcoming(ctx context.Context) ([]domain.Workshop, []string, error) {
	workshops, err := s.api.Upcoming(ctx)
	workshops, warnings, err := s.settle("load workshops", workshops, err)
	if err != nil {
		return nil, nil, err
	}
	domain.SortChronological(workshops)
	return workshops, warnings, nil
}

func (s *TrainingService) Past(ctx context.Context) ([]domain.Workshop, []string, error) {
	workshops, err := s.api.Past(ctx)
	workshops, warnings, err := s.settle("load past workshops", workshops, err)
	if err != nil {
		return nil, nil, err
	}
	domain.SortRecentFirst(workshops)
	return workshops, warnings, nil
}

// Calendar loads both listings concurrently.
func (s *TrainingService) Calendar(ctx context.Context) ([]domain.Workshop, []domain.Workshop, []string, error) {
	var (
		upcoming, past   []domain.Workshop
		upcomingW, pastW []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		upcoming, upcomingW, err = s.Upcoming(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		past, pastW, err = s.Past(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return upcoming, past, append(upcomingW, pastW...), nil
}

func (s *TrainingService) settle(op string, workshops []domain.Workshop, err error) ([]domain.Workshop, []string, error) {
	warning, err := s.policy.Handle(op, err)
	if err != nil {
		return nil, nil, err
	}
	if warning != "" {
		return []domain.Workshop{}, []string{warning}, nil
	}
	if workshops == nil {
		workshops = []domain.Workshop{}
	}
	return workshops, nil, nil
}
