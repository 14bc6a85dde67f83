package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned when the token carries no subject claim.
var ErrNoSubject = errors.New("token has no subject")

// SubjectFromToken extracts the "sub" claim (the user id) WITHOUT verifying the
// signature. The result only fills user_id in outgoing payloads; it must never be
// used to make an authorization decision. The API validates the token itself.
func SubjectFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if sub == "" {
		return "", ErrNoSubject
	}
	return sub, nil
}
