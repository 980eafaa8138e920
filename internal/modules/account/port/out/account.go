package out

import (
	"context"

	"incubator/internal/modules/account/domain"
)

// TokenDecoder reads the user out of a bearer token. The client holds no
// signing key, so decoders do not verify signatures.
type TokenDecoder interface {
	Decode(token string) (domain.User, error)
}

type SessionStore interface {
	Token(ctx context.Context) (string, bool, error)
	SaveToken(ctx context.Context, token string) error
	HasProject(ctx context.Context) (bool, error)
	PromptSeen(ctx context.Context) (bool, error)
	MarkPromptSeen(ctx context.Context) error
	Clear(ctx context.Context) error
}
