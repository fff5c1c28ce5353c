// Package requestctx carries the per-request correlation id through
// context.Context so log lines and audit entries can be tied back to one
// HTTP request.
package requestctx

import "context"

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// FromContext returns the request id and whether one was attached.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// GetRequestID is FromContext with the empty string for requests that never
// passed through the request-id middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := FromContext(ctx)
	return id
}
