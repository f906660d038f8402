package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const purposeInvite = "invite"

// InviteClaims bind an invite to one application and email address.
type InviteClaims struct {
	ApplicationID string `json:"applicationId"`
	Email         string `json:"email"`
	Purpose       string `json:"type"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs an invite token for an application. The returned expiry is the
// same instant that is embedded in the token.
func (c *Codec) Issue(applicationID, email string) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(c.ttl)

	claims := InviteClaims{
		ApplicationID: applicationID,
		Email:         email,
		Purpose:       purposeInvite,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   applicationID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)

	return s, expiry, err
}

// Verify decodes an invite token. It returns nil for anything that is not a
// well formed, unexpired invite signed with this codec's secret.
func (c *Codec) Verify(tokenString string) *InviteClaims {
	claims := new(InviteClaims)

	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !t.Valid {
		return nil
	}

	if claims.Purpose != purposeInvite {
		return nil
	}

	return claims
}
