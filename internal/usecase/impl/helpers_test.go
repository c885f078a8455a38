package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pickup/config"
	"pickup/internal/domain/repository"
	mockRepo "pickup/internal/mocks/repository"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Order: &config.OrderConfig{
			NumberPrefix:       "ORD",
			SubmitMaxRetries:   3,
			LookupMaxRetries:   3,
			DefaultPhoneRegion: "TW",
			MerchantQueueLimit: 50,
		},
	}
}

func zeroBackOff() backoff.BackOff {
	return &backoff.ZeroBackOff{}
}

// txFixtures wires a mocked transaction manager to transaction-scoped repositories.
type txFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	txOrders  *mockRepo.MockOrderRepository
	txCatalog *mockRepo.MockCatalogRepository
}

func newTxFixtures(t *testing.T) txFixtures {
	tx := txFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		txOrders:  mockRepo.NewMockOrderRepository(t),
		txCatalog: mockRepo.NewMockCatalogRepository(t),
	}
	tx.factory.EXPECT().NewOrderRepository().Return(tx.txOrders).Maybe()
	tx.factory.EXPECT().NewCatalogRepository().Return(tx.txCatalog).Maybe()

	return tx
}

// runTx makes the next Execute call run fn against the transaction-scoped repositories.
func (tx txFixtures) runTx() *mockRepo.MockTransactionManager_Execute_Call {
	return tx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
}
