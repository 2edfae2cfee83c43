package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"devconnects/internal/domain/repository"
	mockRepo "devconnects/internal/mocks/repository"
	mockSvc "devconnects/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(context.Context, repository.RepositoryFactory) error"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// trimSanitizer stands in for the markup policy; only whitespace is stripped.
func trimSanitizer(t *testing.T) *mockSvc.MockTextSanitizer {
	sanitizer := mockSvc.NewMockTextSanitizer(t)
	sanitizer.EXPECT().Sanitize(mock.Anything).RunAndReturn(strings.TrimSpace).Maybe()

	return sanitizer
}

// runInTx makes txManager run the callback against factory and return its error.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, factory)
		})
}
