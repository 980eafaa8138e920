package dto

import "time"

type FeedbackOutput struct {
	ID        string
	SessionID string
	Author    string
	Text      string
	CreatedAt time.Time
}

type FeedbackListOutput struct {
	SessionID string
	Items     []FeedbackOutput
	Warnings  []string
}

type AddFeedbackInput struct {
	SessionID string
	Text      string
}

type UpdateFeedbackInput struct {
	SessionID  string
	FeedbackID string
	Text       string
}
