package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	c := NewCodec("s3cret", time.Hour*24*7)

	s, expiry, err := c.Issue("app-1", "ana@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, s)
	require.WithinDuration(t, time.Now().Add(time.Hour*24*7), expiry, time.Minute)

	claims := c.Verify(s)
	require.NotNil(t, claims)
	require.Equal(t, "app-1", claims.ApplicationID)
	require.Equal(t, "ana@x.com", claims.Email)
}

func TestTokensDiffer(t *testing.T) {
	c := NewCodec("s3cret", time.Hour)

	s1, _, err := c.Issue("app-1", "a@x.com")
	require.NoError(t, err)
	s2, _, err := c.Issue("app-2", "b@x.com")
	require.NoError(t, err)

	require.NotEqual(t, s1, s2)
}

func TestGarbage(t *testing.T) {
	c := NewCodec("s3cret", time.Hour)

	require.Nil(t, c.Verify(""))
	require.Nil(t, c.Verify("not.a.token"))
	require.Nil(t, c.Verify("aaaa"))
}

func TestWrongSecret(t *testing.T) {
	c1 := NewCodec("s3cret", time.Hour)
	c2 := NewCodec("other", time.Hour)

	s, _, err := c1.Issue("app-1", "a@x.com")
	require.NoError(t, err)

	require.Nil(t, c2.Verify(s))
	require.NotNil(t, c1.Verify(s))
}

func TestExpired(t *testing.T) {
	c := NewCodec("s3cret", -time.Minute)

	s, _, err := c.Issue("app-1", "a@x.com")
	require.NoError(t, err)

	require.Nil(t, c.Verify(s))
}

func TestWrongPurpose(t *testing.T) {
	c := NewCodec("s3cret", time.Hour)

	claims := InviteClaims{
		ApplicationID: "app-1",
		Email:         "a@x.com",
		Purpose:       "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	require.Nil(t, c.Verify(s))
}
