package handler

import (
	"context"
	"net/http"
	"testing"

	"devconnects/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type pingerFunc func(ctx context.Context, rp *readpref.ReadPref) error

func (f pingerFunc) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return f(ctx, rp)
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("server selection timeout"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(HealthHandlerParams{
				DB:     pingerFunc(func(context.Context, *readpref.ReadPref) error { return tt.pingErr }),
				Logger: discardLogger(),
			})
			e := newTestEcho()
			e.GET("/health", h.Check)

			rec := serve(e, http.MethodGet, "/health", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
