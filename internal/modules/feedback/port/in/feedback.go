package in

import (
	"context"

	"incubator/internal/modules/feedback/dto"
)

type Usecase interface {
	List(ctx context.Context, sessionID string) (dto.FeedbackListOutput, error)
	Add(ctx context.Context, input dto.AddFeedbackInput) (dto.FeedbackOutput, error)
	Update(ctx context.Context, input dto.UpdateFeedbackInput) (dto.FeedbackOutput, error)
	Delete(ctx context.Context, sessionID, feedbackID string) error
}
