package http

import (
	"context"
	"net/http"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

type requirementsKey struct{}

func WithRequirements(ctx context.Context, reqs *core.Requirements) context.Context {
	return context.WithValue(ctx, requirementsKey{}, reqs)
}

// RequirementsFrom returns the registry attached by RequirementsMiddleware,
// or nil.
func RequirementsFrom(ctx context.Context) *core.Requirements {
	reqs, _ := ctx.Value(requirementsKey{}).(*core.Requirements)
	return reqs
}

// RequirementsMiddleware gives every request its own stylesheet registry.
func RequirementsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if RequirementsFrom(req.Context()) != nil {
			next.ServeHTTP(w, req)
			return
		}
		ctx := WithRequirements(req.Context(), core.NewRequirements())
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
