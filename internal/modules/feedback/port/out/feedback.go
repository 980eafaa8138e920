package out

import (
	"context"

	"incubator/internal/modules/feedback/domain"
)

type FeedbackAPI interface {
	List(ctx context.Context, sessionID string) ([]domain.Feedback, error)
	Add(ctx context.Context, sessionID, text string) (domain.Feedback, error)
	Update(ctx context.Context, sessionID, feedbackID, text string) (domain.Feedback, error)
	Delete(ctx context.Context, sessionID, feedbackID string) error
}
