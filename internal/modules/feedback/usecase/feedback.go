package usecase

import (
	"context"

	"incubator/internal/modules/feedback/domain"
	"incubator/internal/modules/feedback/dto"
	feedbackin "incubator/internal/modules/feedback/port/in"
	"incubator/internal/modules/feedback/service"
)

type Interactor struct {
	svc *service.FeedbackService
}

func NewInteractor(svc *service.FeedbackService) feedbackin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, sessionID string) (dto.FeedbackListOutput, error) {
	items, warnings, err := i.svc.List(ctx, sessionID)
	if err != nil {
		return dto.FeedbackListOutput{}, err
	}
	out := make([]dto.FeedbackOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toOutput(item))
	}
	return dto.FeedbackListOutput{SessionID: sessionID, Items: out, Warnings: warnings}, nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddFeedbackInput) (dto.FeedbackOutput, error) {
	item, err := i.svc.Add(ctx, input.SessionID, input.Text)
	if err != nil {
		return dto.FeedbackOutput{}, err
	}
	return toOutput(item), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateFeedbackInput) (dto.FeedbackOutput, error) {
	item, err := i.svc.Update(ctx, input.SessionID, input.FeedbackID, input.Text)
	if err != nil {
		return dto.FeedbackOutput{}, err
	}
	return toOutput(item), nil
}

func (i *Interactor) Delete(ctx context.Context, sessionID, feedbackID string) error {
	return i.svc.Delete(ctx, sessionID, feedbackID)
}

func toOutput(f domain.Feedback) dto.FeedbackOutput {
	return dto.FeedbackOutput{ID: f.ID, SessionID: f.SessionID, Author: f.Author, Text: f.Text, CreatedAt: f.CreatedAt}
}
