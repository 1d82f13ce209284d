package impl

import (
	"context"
	"io"
	"log/slog"

	"custody/config"
	"custody/internal/domain/repository"
	mockRepo "custody/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const testAdminAddress = "addr-admin"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(adminAddress string) *config.Config {
	return &config.Config{
		Ledger: &config.LedgerConfig{
			AdminAddress: adminAddress,
		},
	}
}

// expectExecute routes the transaction closure through the given factory so
// repository expectations set on it are exercised and the closure's real
// error propagates back to the test.
func expectExecute(txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
