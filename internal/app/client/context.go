package client

import (
	"context"
	"errors"
)

type ctxKey struct{}

// NewContext attaches the app to a command context.
func NewContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext retrieves the app set up by the root command.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("client app is not initialized")
	}
	return app, nil
}
