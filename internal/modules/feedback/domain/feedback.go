package domain

import (
	"strings"
	"time"

	apperrors "incubator/internal/platform/errors"
)

type Feedback struct {
	ID        string
	SessionID string
	Author    string
	Text      string
	CreatedAt time.Time
}

// NormalizeText trims text and rejects an empty result.
func NormalizeText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", apperrors.Invalid("feedback text is required")
	}
	return trimmed, nil
}

func ValidateSessionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Invalid("session id is required")
	}
	return nil
}
