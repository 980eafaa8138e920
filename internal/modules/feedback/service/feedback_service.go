package service

import (
	"context"
	"strings"

	"incubator/internal/modules/feedback/domain"
	feedbackout "incubator/internal/modules/feedback/port/out"
	"incubator/internal/platform/degrade"
	apperrors "incubator/internal/platform/errors"
)

type FeedbackService struct {
	api    feedbackout.FeedbackAPI
	policy degrade.Policy
}

func NewFeedbackService(api feedbackout.FeedbackAPI, policy degrade.Policy) *FeedbackService {
	return &FeedbackService{api: api, policy: policy}
}

func (s *FeedbackService) List(ctx context.Context, sessionID string) ([]domain.Feedback, []string, error) {
	if err := domain.ValidateSessionID(sessionID); err != nil {
		return nil, nil, err
	}
	items, err := s.api.List(ctx, sessionID)
	warning, err := s.policy.Handle("load feedback", err)
	if err != nil {
		return nil, nil, err
	}
	if warning != "" {
		return []domain.Feedback{}, []string{warning}, nil
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	return items, nil, nil
}

func (s *FeedbackService) Add(ctx context.Context, sessionID, text string) (domain.Feedback, error) {
	if err := domain.ValidateSessionID(sessionID); err != nil {
		return domain.Feedback{}, err
	}
	text, err := domain.NormalizeText(text)
	if err != nil {
		return domain.Feedback{}, err
	}
	return s.api.Add(ctx, sessionID, text)
}

func (s *FeedbackService) Update(ctx context.Context, sessionID, feedbackID, text string) (domain.Feedback, error) {
	if err := domain.ValidateSessionID(sessionID); err != nil {
		return domain.Feedback{}, err
	}
	if strings.TrimSpace(feedbackID) == "" {
		return domain.Feedback{}, apperrors.Invalid("feedback id is required")
	}
	text, err := domain.NormalizeText(text)
	if err != nil {
		return domain.Feedback{}, err
	}
	return s.api.Update(ctx, sessionID, feedbackID, text)
}

func (s *FeedbackService) Delete(ctx context.Context, sessionID, feedbackID string) error {
	if err := domain.ValidateSessionID(sessionID); err != nil {
		return err
	}
	if strings.TrimSpace(feedbackID) == "" {
		return apperrors.Invalid("feedback id is required")
	}
	return s.api.Delete(ctx, sessionID, feedbackID)
}
