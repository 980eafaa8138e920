package in

import (
	"context"

	"incubator/internal/modules/feedback/dto"
	feedbackin "incubator/internal/modules/feedback/port/in"
)

type CLIHandler struct {
	usecase feedbackin.Usecase
}

func NewCLIHandler(usecase feedbackin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, sessionID string) (dto.FeedbackListOutput, error) {
	return h.usecase.List(ctx, sessionID)
}

func (h CLIHandler) Add(ctx context.Context, sessionID, text string) (dto.FeedbackOutput, error) {
	return h.usecase.Add(ctx, dto.AddFeedbackInput{SessionID: sessionID, Text: text})
}

func (h CLIHandler) Update(ctx context.Context, sessionID, feedbackID, text string) (dto.FeedbackOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateFeedbackInput{SessionID: sessionID, FeedbackID: feedbackID, Text: text})
}

func (h CLIHandler) Delete(ctx context.Context, sessionID, feedbackID string) error {
	return h.usecase.Delete(ctx, sessionID, feedbackID)
}
