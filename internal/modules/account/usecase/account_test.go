package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	accountout "incubator/internal/modules/account/adapter/out"
	"incubator/internal/modules/account/dto"
	accountin "incubator/internal/modules/account/port/in"
	"incubator/internal/modules/account/service"
	"incubator/internal/modules/account/usecase"
	"incubator/internal/platform/clock"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/state"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newAccount(store state.Store) accountin.Usecase {
	svc := service.NewAccountService(clock.Fixed(now), accountout.NewJWTDecoder(), accountout.NewStateSessionStore(store), nil)
	return usecase.NewInteractor(svc)
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestLoginStoresTokenAndLogoutClears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := state.NewMemoryStore()
	uc := newAccount(store)

	raw := token(t, jwt.MapClaims{"id": "u1", "firstName": "Ana", "role": "MEMBER", "exp": now.Add(time.Hour).Unix()})
	user, err := uc.Login(ctx, dto.LoginInput{Token: "Bearer " + raw})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u1" || user.Role != "MEMBER" {
		t.Fatalf("unexpected user %+v", user)
	}
	stored, ok, _ := store.Get(ctx, state.KeyAuthToken)
	if !ok || stored != raw {
		t.Fatalf("token not stored without Bearer prefix: %q", stored)
	}
	if _, err := uc.CurrentUser(ctx); err != nil {
		t.Fatalf("current user: %v", err)
	}

	_ = store.Set(ctx, state.KeyProjectID, "p1")
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("logout must clear every key")
	}
	if _, err := uc.CurrentUser(ctx); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated after logout, got %v", err)
	}
}

func TestLoginRejectsBadTokens(t *testing.T) {
	t.Parallel()
	store := state.NewMemoryStore()
	uc := newAccount(store)
	expired := token(t, jwt.MapClaims{"id": "u1", "exp": now.Add(-time.Minute).Unix()})
	for _, tok := range []string{"", "garbage", expired} {
		if _, err := uc.Login(context.Background(), dto.LoginInput{Token: tok}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("token %q: expected invalid input, got %v", tok, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("rejected tokens must not be stored")
	}
}

func TestLandingAndStartupPrompt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := state.NewMemoryStore()
	uc := newAccount(store)
	if _, err := uc.Login(ctx, dto.LoginInput{Token: token(t, jwt.MapClaims{"id": "u1", "firstName": "Ana", "role": "MEMBER"})}); err != nil {
		t.Fatalf("login: %v", err)
	}

	landing, err := uc.Landing(ctx)
	if err != nil || landing.Destination != "startup-prompt" {
		t.Fatalf("new member should see startup prompt, got %+v %v", landing, err)
	}
	_ = store.Set(ctx, state.KeyProjectID, state.SentinelProjectID)
	if landing, _ = uc.Landing(ctx); landing.Destination != "startup-prompt" {
		t.Fatalf("sentinel project is not a project, got %s", landing.Destination)
	}
	if err := uc.MarkStartupPromptSeen(ctx); err != nil {
		t.Fatalf("mark seen: %v", err)
	}
	if v, _, _ := store.Get(ctx, state.KeyStartupPromptSeen); v != "true" {
		t.Fatalf("expected hasSeenStartupPrompt=true, got %q", v)
	}
	if landing, _ = uc.Landing(ctx); landing.Destination != "progress" {
		t.Fatalf("expected progress after prompt, got %s", landing.Destination)
	}

	admin := newAccount(state.NewMemoryStore())
	if _, err := admin.Login(ctx, dto.LoginInput{Token: token(t, jwt.MapClaims{"id": "a1", "role": "ADMIN"})}); err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if landing, _ := admin.Landing(ctx); landing.Destination != "admin-projects" {
		t.Fatalf("admin should land on admin-projects, got %s", landing.Destination)
	}
}
