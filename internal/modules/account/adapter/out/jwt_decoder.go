package out

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"incubator/internal/modules/account/domain"
	accountout "incubator/internal/modules/account/port/out"
)

// JWTDecoder reads user claims without verifying the signature; the backend
// verifies every request it receives.
type JWTDecoder struct {
	parser *jwt.Parser
}

func NewJWTDecoder() accountout.TokenDecoder {
	return &JWTDecoder{parser: jwt.NewParser()}
}

func (d *JWTDecoder) Decode(token string) (domain.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return domain.User{}, fmt.Errorf("decode token: %w", err)
	}
	user := domain.User{
		ID:        firstClaim(claims, "id", "userId", "user_id", "sub"),
		FirstName: firstClaim(claims, "firstName", "first_name", "given_name"),
		LastName:  firstClaim(claims, "lastName", "last_name", "family_name"),
		Email:     firstClaim(claims, "email"),
		Role:      domain.ParseRole(firstClaim(claims, "role")),
		ProjectID: firstClaim(claims, "projectId", "project_id"),
	}
	if user.FirstName == "" {
		if name := firstClaim(claims, "name"); name != "" {
			first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
			user.FirstName, user.LastName = first, strings.TrimSpace(last)
		}
	}
	if user.ID == "" {
		return domain.User{}, fmt.Errorf("decode token: no user id claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return domain.User{}, fmt.Errorf("decode token: %w", err)
	}
	if exp != nil {
		user.ExpiresAt = exp.Time.UTC()
	}
	return user, nil
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		switch v := claims[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
