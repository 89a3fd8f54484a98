package middleware

import (
	"context"
	"net/http"

	"github.com/advisorhq/web/internal/tenant"
)

type contextKey string

const tenantKey contextKey = "tenant"

// WithTenant resolves the request Host header to a tenant and injects it
// into the request context. Requests for unknown domains pass through
// unresolved; handlers decide how to answer them.
func WithTenant(store *tenant.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if t, ok := store.GetByDomain(r.Host); ok {
				r = r.WithContext(context.WithValue(r.Context(), tenantKey, t))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TenantFrom returns the tenant resolved for this request, if any.
func TenantFrom(ctx context.Context) (tenant.Tenant, bool) {
	t, ok := ctx.Value(tenantKey).(tenant.Tenant)
	return t, ok
}
