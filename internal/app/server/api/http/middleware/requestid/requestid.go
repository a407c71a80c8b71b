package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

type contextKey struct{}

const Header = "X-Request-Id"

// Middleware assigns each request a correlation id, echoing the caller's
// one when supplied. The id rides the context and the response header.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx = huma.WithValue(ctx, contextKey{}, id)
		ctx.SetHeader(Header, id)

		next(ctx)
	}
}

// FromContext returns the request id, if one was assigned.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok
}
