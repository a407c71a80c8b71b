package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		wantStatus   string
		wantDatabase string
	}{
		{
			name:         "database up",
			pingErr:      nil,
			wantStatus:   "OK",
			wantDatabase: "up",
		},
		{
			name:         "database down",
			pingErr:      errors.New("connection refused"),
			wantStatus:   "OK",
			wantDatabase: "down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubPinger{err: tt.pingErr}, slog.Default(), huma.Middlewares{})

			output, err := handler.healthCheck(context.Background(), &Input{})

			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.wantStatus, output.Body.Status)
			assert.Equal(t, tt.wantDatabase, output.Body.Database)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(&stubPinger{}, slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
