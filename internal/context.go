package internal

import (
	"context"
	"time"
)

type ctxKey string

const (
	ContextEmployeeKey ctxKey = "employeeID"
	ContextAdminKey    ctxKey = "isAdmin"
)

// EmployeeIDFromContext returns the id of the logged in employee, or 0.
func EmployeeIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if employeeID, ok := ctx.Value(ContextEmployeeKey).(int64); ok {
		return employeeID
	}
	return 0
}

func ContextWithEmployeeID(ctx context.Context, employeeID int64) context.Context {
	return context.WithValue(ctx, ContextEmployeeKey, employeeID)
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	isAdmin, _ := ctx.Value(ContextAdminKey).(bool)
	return isAdmin
}

func ContextWithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, ContextAdminKey, isAdmin)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
