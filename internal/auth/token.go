package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/CafeBooker/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService verifies HS256 bearer tokens issued by the identity provider
// and turns them into requesters.
type TokenService struct {
	secret []byte
	admins map[string]struct{}
	now    func() time.Time
}

func NewTokenService(secret string, adminEmails []string) *TokenService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			admins[e] = struct{}{}
		}
	}

	return &TokenService{
		secret: []byte(secret),
		admins: admins,
		now:    time.Now,
	}
}

// IsAdminEmail reports whether email is on the configured admin list.
func (s *TokenService) IsAdminEmail(email string) bool {
	_, ok := s.admins[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func (s *TokenService) Verify(raw string) (*domain.Requester, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: email claim is required", ErrInvalidToken)
	}

	role := domain.RoleUser
	if strings.EqualFold(claims.Role, string(domain.RoleAdmin)) || s.IsAdminEmail(claims.Email) {
		role = domain.RoleAdmin
	}

	return &domain.Requester{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// Issue signs a token for r. Production tokens come from the identity
// provider; this is for cmd/issue_token and tests.
func (s *TokenService) Issue(r domain.Requester, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		Name:  r.Name,
		Email: r.Email,
		Role:  string(r.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   r.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
