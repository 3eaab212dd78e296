package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	accountIDKey contextKey = "account_id"
)

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithAccountID stores the authenticated account id in the context.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// GetRequestID returns the request id, or "" when absent.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetAccountID returns the account id, or "" when absent.
func GetAccountID(ctx context.Context) string {
	if accountID, ok := ctx.Value(accountIDKey).(string); ok {
		return accountID
	}
	return ""
}

// FromContext returns a logger annotated with request_id and account_id
// when present in the context.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()

	var fields []any
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if accountID := GetAccountID(ctx); accountID != "" {
		fields = append(fields, "account_id", accountID)
	}

	if len(fields) > 0 {
		l = l.With(fields...)
	}
	return l
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error message with the error attached as a field.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err.Error()}, args...)
	FromContext(ctx).Error(msg, fields...)
}
