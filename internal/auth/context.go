package auth

import (
	"context"

	"github.com/stpnv0/CafeBooker/internal/domain"
)

type ctxKey struct{}

func NewContext(ctx context.Context, r *domain.Requester) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// FromContext returns the authenticated requester, or nil for anonymous calls.
func FromContext(ctx context.Context) *domain.Requester {
	r, _ := ctx.Value(ctxKey{}).(*domain.Requester)
	return r
}
