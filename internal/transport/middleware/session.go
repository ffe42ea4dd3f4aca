package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/lead-tracker/internal"
	"github.com/frahmantamala/lead-tracker/internal/employee"
	"github.com/frahmantamala/lead-tracker/internal/transport"
	"github.com/frahmantamala/lead-tracker/pkg/logger"
)

// SessionReader exposes the stored session flags.
type SessionReader interface {
	IsAdminAuthenticated(ctx context.Context) (bool, error)
	CurrentEmployee(ctx context.Context) (*employee.Employee, error)
}

// SessionContext loads the session flags once per request and puts them in
// the request context for the Require* guards below.
func SessionContext(sessions SessionReader, lg *slog.Logger) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(lg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			isAdmin, err := sessions.IsAdminAuthenticated(ctx)
			if err != nil {
				base.WriteAppError(w, err)
				return
			}
			current, err := sessions.CurrentEmployee(ctx)
			if err != nil {
				base.WriteAppError(w, err)
				return
			}

			ctx = internal.ContextWithAdmin(ctx, isAdmin)
			if current != nil {
				ctx = internal.ContextWithEmployeeID(ctx, current.ID)
				ctx = logger.WithEmployee(ctx, current.ID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests without an open admin session.
func RequireAdmin(lg *slog.Logger) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(lg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !internal.IsAdminFromContext(r.Context()) {
				base.WriteAppError(w, internal.ErrSessionRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwnerOrAdmin lets the admin through, and an employee only when the
// path parameter names their own id.
func RequireOwnerOrAdmin(param string, lg *slog.Logger) func(http.Handler) http.Handler {
	return requireOwner(param, true, lg)
}

// RequireOwner lets only the employee named by the path parameter through.
// The admin may read leads but never change them.
func RequireOwner(param string, lg *slog.Logger) func(http.Handler) http.Handler {
	return requireOwner(param, false, lg)
}

func requireOwner(param string, allowAdmin bool, lg *slog.Logger) func(http.Handler) http.Handler {
	base := transport.NewBaseHandler(lg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if allowAdmin && internal.IsAdminFromContext(ctx) {
				next.ServeHTTP(w, r)
				return
			}

			current := internal.EmployeeIDFromContext(ctx)
			if current == 0 {
				base.WriteAppError(w, internal.ErrSessionRequired)
				return
			}

			owner, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil || owner != current {
				lg.Warn("access denied: not the lead owner",
					"employee_id", current,
					"requested", chi.URLParam(r, param))
				base.WriteAppError(w, internal.ErrNotLeadOwner)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
