package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", nil)

	token, err := svc.Issue(domain.Requester{ID: "u1", Name: "Alice", Email: "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	r, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", r.ID)
	assert.Equal(t, "Alice", r.Name)
	assert.Equal(t, "alice@example.com", r.Email)
	assert.Equal(t, domain.RoleUser, r.Role)
}

func TestTokenService_AdminByEmailList(t *testing.T) {
	svc := NewTokenService("secret", []string{" Boss@Example.com ", ""})

	token, err := svc.Issue(domain.Requester{ID: "a1", Email: "boss@example.com"}, time.Hour)
	require.NoError(t, err)

	r, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, r.Role)
	assert.True(t, svc.IsAdminEmail("BOSS@example.com"))
	assert.False(t, svc.IsAdminEmail("alice@example.com"))
}

func TestTokenService_AdminByRoleClaim(t *testing.T) {
	svc := NewTokenService("secret", nil)

	token, err := svc.Issue(domain.Requester{ID: "a1", Email: "ops@example.com", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	r, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, r.IsAdmin())
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("one", nil).Issue(domain.Requester{Email: "a@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService("two", nil).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", nil)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(domain.Requester{Email: "a@example.com"}, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingEmail(t *testing.T) {
	svc := NewTokenService("secret", nil)

	token, err := svc.Issue(domain.Requester{ID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	svc := NewTokenService("secret", nil)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{Email: "a@example.com"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
