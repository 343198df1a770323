package credential

import (
	"time"

	"beacon/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialsFromToken derives the user identity from the token's claims.
// The signature is not verified here; the server is the authority and the
// client only needs the subject and expiry for connection bookkeeping.
func credentialsFromToken(token string) (*entity.Credentials, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("access token has no subject claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "parse subject claim")
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &entity.Credentials{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}
