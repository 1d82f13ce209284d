package impl

import (
	"context"
	"testing"

	"custody/internal/domain/entity"
	domainerrors "custody/internal/domain/errors"
	"custody/internal/domain/repository"
	mockRepo "custody/internal/mocks/repository"
	mockSvc "custody/internal/mocks/service"
	"custody/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transferServiceFixtures holds all test dependencies for transfer service tests.
type transferServiceFixtures struct {
	service      usecase.TransferUsecase
	txManager    *mockRepo.MockTransactionManager
	transferRepo *mockRepo.MockTransferRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestTransferService(t *testing.T) transferServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	transferRepo := mockRepo.NewMockTransferRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewTransferService(TransferServiceParams{
		TxManager:      txManager,
		TransferRepo:   transferRepo,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	return transferServiceFixtures{
		service:      service,
		txManager:    txManager,
		transferRepo: transferRepo,
		publisher:    publisher,
	}
}

// transferMocks bundles the transaction-scoped repositories used by the
// handshake operations.
type transferMocks struct {
	factory      *mockRepo.MockRepositoryFactory
	identityRepo *mockRepo.MockIdentityRepository
	assetRepo    *mockRepo.MockAssetRepository
	transferRepo *mockRepo.MockTransferRepository
}

func newTransferMocks(t *testing.T) transferMocks {
	return transferMocks{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		assetRepo:    mockRepo.NewMockAssetRepository(t),
		transferRepo: mockRepo.NewMockTransferRepository(t),
	}
}

func (m transferMocks) wireCreate() {
	m.factory.EXPECT().IdentityRepo().Return(m.identityRepo)
	m.factory.EXPECT().AssetRepo().Return(m.assetRepo)
	m.factory.EXPECT().TransferRepo().Return(m.transferRepo)
}

func (m transferMocks) wireResolve() {
	m.factory.EXPECT().AssetRepo().Return(m.assetRepo)
	m.factory.EXPECT().TransferRepo().Return(m.transferRepo)
}

func testAsset() *entity.Asset {
	return &entity.Asset{ID: 1, CreatorAddress: "addr-producer", Name: "Wheat", TotalSupply: 1000}
}

func pendingIntent() *entity.TransferIntent {
	return &entity.TransferIntent{
		ID:          10,
		FromAddress: "addr-producer",
		ToAddress:   "addr-factory",
		AssetID:     1,
		Amount:      400,
		Status:      entity.TransferStatusPending,
	}
}

func TestTransferService_CreateTransfer_Success(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-producer").
		Return(approvedIdentity("addr-producer", entity.RoleProducer), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-factory").
		Return(approvedIdentity("addr-factory", entity.RoleFactory), nil)
	m.transferRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TransferIntent")).
		Run(func(_ context.Context, intent *entity.TransferIntent) {
			intent.ID = 10
		}).
		Return(nil)
	expectExecute(fx.txManager, ctx, m.factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        400,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(10), intent.ID)
	assert.Equal(t, entity.TransferStatusPending, intent.Status)
	// No DebitBalance/CreditBalance expectations: requesting must not move balances.
}

func TestTransferService_CreateTransfer_InvalidRecipient(t *testing.T) {
	tests := []struct {
		name string
		to   string
	}{
		{name: "empty recipient", to: ""},
		{name: "self transfer", to: "addr-producer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTransferService(t)
			ctx := context.Background()

			m := newTransferMocks(t)
			m.wireCreate()
			expectExecute(fx.txManager, ctx, m.factory)

			intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
				CallerAddress: "addr-producer",
				ToAddress:     tt.to,
				AssetID:       1,
				Amount:        400,
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidRecipient)
			assert.Nil(t, intent)
		})
	}
}

func TestTransferService_CreateTransfer_AssetNotFound(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(99)).Return(nil, repository.ErrAssetNotFound)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       99,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_ZeroAmount(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_InsufficientBalance(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(100), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_SenderNotApproved(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	rejected := &entity.Identity{
		Address: "addr-producer",
		Role:    entity.RoleProducer,
		Status:  entity.IdentityStatusRejected,
	}

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-producer").Return(rejected, nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_RecipientNotRegistered(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-producer").
		Return(approvedIdentity("addr-producer", entity.RoleProducer), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-ghost").Return(nil, repository.ErrIdentityNotFound)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-ghost",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRecipientNotRegistered)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_RecipientNotApproved(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	pending := &entity.Identity{
		Address: "addr-factory",
		Role:    entity.RoleFactory,
		Status:  entity.IdentityStatusPending,
	}

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-producer").
		Return(approvedIdentity("addr-producer", entity.RoleProducer), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-factory").Return(pending, nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRecipientNotApproved)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_ConsumerSender(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-consumer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-consumer").
		Return(approvedIdentity("addr-consumer", entity.RoleConsumer), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-factory").
		Return(approvedIdentity("addr-factory", entity.RoleFactory), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-consumer",
		ToAddress:     "addr-factory",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrSenderCannotTransfer)
	assert.Nil(t, intent)
}

func TestTransferService_CreateTransfer_InvalidRolePath(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	// Producers hand off to factories only; skipping straight to a retailer
	// is not an allowed custody step.
	m := newTransferMocks(t)
	m.wireCreate()

	m.assetRepo.EXPECT().FindByID(ctx, uint64(1)).Return(testAsset(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-producer").
		Return(approvedIdentity("addr-producer", entity.RoleProducer), nil)
	m.identityRepo.EXPECT().FindByAddress(ctx, "addr-retailer").
		Return(approvedIdentity("addr-retailer", entity.RoleRetailer), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.CreateTransfer(ctx, &usecase.CreateTransferInput{
		CallerAddress: "addr-producer",
		ToAddress:     "addr-retailer",
		AssetID:       1,
		Amount:        400,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRolePath)
	assert.Nil(t, intent)
}

func TestTransferService_AcceptTransfer_Success(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireResolve()

	m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(pendingIntent(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(1000), nil)
	m.assetRepo.EXPECT().DebitBalance(ctx, uint64(1), "addr-producer", uint64(400)).Return(nil)
	m.assetRepo.EXPECT().CreditBalance(ctx, uint64(1), "addr-factory", uint64(400)).Return(nil)
	m.transferRepo.EXPECT().UpdateStatus(ctx, uint64(10), entity.TransferStatusAccepted).Return(nil)
	expectExecute(fx.txManager, ctx, m.factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	intent, err := fx.service.AcceptTransfer(ctx, "addr-factory", 10)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusAccepted, intent.Status)
}

func TestTransferService_AcceptTransfer_InsufficientBalance(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	// The sender's balance drained between request and acceptance, e.g. an
	// earlier overlapping intent got accepted first. This one must fail and
	// stay pending.
	m := newTransferMocks(t)
	m.wireResolve()

	m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(pendingIntent(), nil)
	m.assetRepo.EXPECT().GetBalance(ctx, uint64(1), "addr-producer").Return(uint64(300), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.AcceptTransfer(ctx, "addr-factory", 10)

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	assert.Nil(t, intent)
}

func TestTransferService_AcceptTransfer_NotRecipient(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireResolve()

	m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(pendingIntent(), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.AcceptTransfer(ctx, "addr-producer", 10)

	assert.ErrorIs(t, err, domainerrors.ErrNotRecipient)
	assert.Nil(t, intent)
}

func TestTransferService_AcceptTransfer_NotPending(t *testing.T) {
	tests := []struct {
		name   string
		status entity.TransferStatus
	}{
		{name: "already accepted", status: entity.TransferStatusAccepted},
		{name: "already rejected", status: entity.TransferStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTransferService(t)
			ctx := context.Background()

			resolved := pendingIntent()
			resolved.Status = tt.status

			m := newTransferMocks(t)
			m.wireResolve()

			m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(resolved, nil)
			expectExecute(fx.txManager, ctx, m.factory)

			intent, err := fx.service.AcceptTransfer(ctx, "addr-factory", 10)

			assert.ErrorIs(t, err, domainerrors.ErrTransferNotPending)
			assert.Nil(t, intent)
		})
	}
}

func TestTransferService_AcceptTransfer_NotFound(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.wireResolve()

	m.transferRepo.EXPECT().FindByID(ctx, uint64(99)).Return(nil, repository.ErrTransferNotFound)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.AcceptTransfer(ctx, "addr-factory", 99)

	assert.ErrorIs(t, err, domainerrors.ErrTransferNotFound)
	assert.Nil(t, intent)
}

func TestTransferService_RejectTransfer_Success(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.factory.EXPECT().TransferRepo().Return(m.transferRepo)

	m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(pendingIntent(), nil)
	m.transferRepo.EXPECT().UpdateStatus(ctx, uint64(10), entity.TransferStatusRejected).Return(nil)
	expectExecute(fx.txManager, ctx, m.factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	intent, err := fx.service.RejectTransfer(ctx, "addr-factory", 10)

	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusRejected, intent.Status)
	// No DebitBalance/CreditBalance expectations: rejection must not move balances.
}

func TestTransferService_RejectTransfer_NotRecipient(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	m := newTransferMocks(t)
	m.factory.EXPECT().TransferRepo().Return(m.transferRepo)

	m.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(pendingIntent(), nil)
	expectExecute(fx.txManager, ctx, m.factory)

	intent, err := fx.service.RejectTransfer(ctx, "addr-stranger", 10)

	assert.ErrorIs(t, err, domainerrors.ErrNotRecipient)
	assert.Nil(t, intent)
}

func TestTransferService_GetTransfer_Success(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	expected := pendingIntent()
	fx.transferRepo.EXPECT().FindByID(ctx, uint64(10)).Return(expected, nil)

	intent, err := fx.service.GetTransfer(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, expected, intent)
}

func TestTransferService_GetTransfer_NotFound(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	fx.transferRepo.EXPECT().FindByID(ctx, uint64(99)).Return(nil, repository.ErrTransferNotFound)

	intent, err := fx.service.GetTransfer(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrTransferNotFound)
	assert.Nil(t, intent)
}

func TestTransferService_ListOwnedTransfers(t *testing.T) {
	fx := createTestTransferService(t)
	ctx := context.Background()

	intents := []*entity.TransferIntent{pendingIntent()}
	fx.transferRepo.EXPECT().ListByParticipant(ctx, "addr-producer").Return(intents, nil)

	got, err := fx.service.ListOwnedTransfers(ctx, "addr-producer")

	require.NoError(t, err)
	assert.Equal(t, intents, got)
}
