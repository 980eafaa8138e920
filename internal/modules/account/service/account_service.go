package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"incubator/internal/modules/account/domain"
	accountout "incubator/internal/modules/account/port/out"
	"incubator/internal/platform/clock"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/logging"
)

type AccountService struct {
	clock   clock.Clock
	decoder accountout.TokenDecoder
	store   accountout.SessionStore
	log     *zap.Logger
}

func NewAccountService(clock clock.Clock, decoder accountout.TokenDecoder, store accountout.SessionStore, log *zap.Logger) *AccountService {
	return &AccountService{clock: clock, decoder: decoder, store: store, log: logging.OrNop(log)}
}

// Login stores token after checking it decodes to a live user.
func (s *AccountService) Login(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return domain.User{}, apperrors.Invalid("token is required")
	}
	user, err := s.decoder.Decode(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if user.Expired(s.clock.Now()) {
		return domain.User{}, apperrors.Invalid("token expired at %s", user.ExpiresAt.Format("2006-01-02 15:04"))
	}
	if err := s.store.SaveToken(ctx, token); err != nil {
		return domain.User{}, err
	}
	s.log.Info("logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *AccountService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *AccountService) CurrentUser(ctx context.Context) (domain.User, error) {
	token, ok, err := s.store.Token(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if !ok || strings.TrimSpace(token) == "" {
		return domain.User{}, fmt.Errorf("%w: run `incubator login`", apperrors.ErrUnauthenticated)
	}
	user, err := s.decoder.Decode(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: stored token unreadable: %v", apperrors.ErrUnauthenticated, err)
	}
	if user.Expired(s.clock.Now()) {
		return domain.User{}, fmt.Errorf("%w: session expired; log in again", apperrors.ErrUnauthenticated)
	}
	return user, nil
}

func (s *AccountService) Landing(ctx context.Context) (domain.User, domain.Destination, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, "", err
	}
	hasProject, err := s.store.HasProject(ctx)
	if err != nil {
		return domain.User{}, "", err
	}
	seen, err := s.store.PromptSeen(ctx)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, domain.Landing(user, hasProject, seen), nil
}

func (s *AccountService) MarkStartupPromptSeen(ctx context.Context) error {
	return s.store.MarkPromptSeen(ctx)
}
