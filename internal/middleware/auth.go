package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/CafeBooker/internal/auth"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type TokenVerifier interface {
	Verify(raw string) (*domain.Requester, error)
}

// Authenticate кладет в контекст запроса пользователя из Bearer-токена.
// Без заголовка запрос проходит анонимно, с битым токеном получает 401.
func Authenticate(v TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "malformed authorization header"})
			return
		}

		requester, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		c.Request = c.Request.WithContext(auth.NewContext(c.Request.Context(), requester))
		c.Next()
	}
}
