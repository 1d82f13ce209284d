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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewIdentityService(IdentityServiceParams{
		TxManager:      txManager,
		IdentityRepo:   identityRepo,
		EventPublisher: publisher,
		Config:         newTestConfig(testAdminAddress),
		Logger:         newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:      service,
		txManager:    txManager,
		identityRepo: identityRepo,
		publisher:    publisher,
	}
}

func TestIdentityService_RequestIdentity_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	txIdentityRepo.EXPECT().FindByAddress(ctx, "addr-producer").Return(nil, repository.ErrIdentityNotFound)
	txIdentityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)
	expectExecute(fx.txManager, ctx, factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	identity, err := fx.service.RequestIdentity(ctx, &usecase.RequestIdentityInput{
		CallerAddress: "addr-producer",
		Role:          "producer",
	})

	require.NoError(t, err)
	assert.Equal(t, "addr-producer", identity.Address)
	assert.Equal(t, entity.RoleProducer, identity.Role)
	assert.Equal(t, entity.IdentityStatusPending, identity.Status)
}

func TestIdentityService_RequestIdentity_InvalidRole(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	for _, role := range []string{"", "wholesaler", "PRODUCER"} {
		identity, err := fx.service.RequestIdentity(ctx, &usecase.RequestIdentityInput{
			CallerAddress: "addr-1",
			Role:          role,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
		assert.Nil(t, identity)
	}
}

func TestIdentityService_RequestIdentity_AlreadyRegistered(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	existing := &entity.Identity{
		ID:      uuid.New(),
		Address: "addr-producer",
		Role:    entity.RoleProducer,
		Status:  entity.IdentityStatusApproved,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	txIdentityRepo.EXPECT().FindByAddress(ctx, "addr-producer").Return(existing, nil)
	expectExecute(fx.txManager, ctx, factory)

	identity, err := fx.service.RequestIdentity(ctx, &usecase.RequestIdentityInput{
		CallerAddress: "addr-producer",
		Role:          "factory",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
	assert.Nil(t, identity)
}

func TestIdentityService_SetIdentityStatus_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	pending := &entity.Identity{
		ID:      uuid.New(),
		Address: "addr-producer",
		Role:    entity.RoleProducer,
		Status:  entity.IdentityStatusPending,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	txIdentityRepo.EXPECT().FindByAddress(ctx, "addr-producer").Return(pending, nil)
	txIdentityRepo.EXPECT().UpdateStatus(ctx, "addr-producer", entity.IdentityStatusApproved).Return(nil)
	expectExecute(fx.txManager, ctx, factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	identity, err := fx.service.SetIdentityStatus(ctx, &usecase.SetIdentityStatusInput{
		CallerAddress: testAdminAddress,
		TargetAddress: "addr-producer",
		Status:        "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.IdentityStatusApproved, identity.Status)
}

func TestIdentityService_SetIdentityStatus_ReapproveAfterReject(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	rejected := &entity.Identity{
		ID:      uuid.New(),
		Address: "addr-factory",
		Role:    entity.RoleFactory,
		Status:  entity.IdentityStatusRejected,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	txIdentityRepo.EXPECT().FindByAddress(ctx, "addr-factory").Return(rejected, nil)
	txIdentityRepo.EXPECT().UpdateStatus(ctx, "addr-factory", entity.IdentityStatusApproved).Return(nil)
	expectExecute(fx.txManager, ctx, factory)

	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	identity, err := fx.service.SetIdentityStatus(ctx, &usecase.SetIdentityStatusInput{
		CallerAddress: testAdminAddress,
		TargetAddress: "addr-factory",
		Status:        "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.IdentityStatusApproved, identity.Status)
}

func TestIdentityService_SetIdentityStatus_NotAuthorized(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	identity, err := fx.service.SetIdentityStatus(ctx, &usecase.SetIdentityStatusInput{
		CallerAddress: "addr-not-admin",
		TargetAddress: "addr-producer",
		Status:        "approved",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	assert.Nil(t, identity)
}

func TestIdentityService_SetIdentityStatus_UnknownStatus(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	identity, err := fx.service.SetIdentityStatus(ctx, &usecase.SetIdentityStatusInput{
		CallerAddress: testAdminAddress,
		TargetAddress: "addr-producer",
		Status:        "frozen",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, identity)
}

func TestIdentityService_SetIdentityStatus_TargetNotFound(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	factory.EXPECT().IdentityRepo().Return(txIdentityRepo)
	txIdentityRepo.EXPECT().FindByAddress(ctx, "addr-ghost").Return(nil, repository.ErrIdentityNotFound)
	expectExecute(fx.txManager, ctx, factory)

	identity, err := fx.service.SetIdentityStatus(ctx, &usecase.SetIdentityStatusInput{
		CallerAddress: testAdminAddress,
		TargetAddress: "addr-ghost",
		Status:        "rejected",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	assert.Nil(t, identity)
}

func TestIdentityService_GetIdentity_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	expected := &entity.Identity{
		ID:      uuid.New(),
		Address: "addr-retailer",
		Role:    entity.RoleRetailer,
		Status:  entity.IdentityStatusApproved,
	}

	fx.identityRepo.EXPECT().FindByAddress(ctx, "addr-retailer").Return(expected, nil)

	identity, err := fx.service.GetIdentity(ctx, "addr-retailer")

	require.NoError(t, err)
	assert.Equal(t, expected, identity)
}

func TestIdentityService_GetIdentity_NotFound(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.identityRepo.EXPECT().FindByAddress(ctx, "addr-ghost").Return(nil, repository.ErrIdentityNotFound)

	identity, err := fx.service.GetIdentity(ctx, "addr-ghost")

	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
	assert.Nil(t, identity)
}

func TestIdentityService_IsAdmin(t *testing.T) {
	fx := createTestIdentityService(t)

	assert.True(t, fx.service.IsAdmin(testAdminAddress))
	assert.False(t, fx.service.IsAdmin("addr-producer"))
	assert.False(t, fx.service.IsAdmin(""))
}

func TestIdentityService_IsAdmin_Unconfigured(t *testing.T) {
	service := NewIdentityService(IdentityServiceParams{
		TxManager:      mockRepo.NewMockTransactionManager(t),
		IdentityRepo:   mockRepo.NewMockIdentityRepository(t),
		EventPublisher: mockSvc.NewMockEventPublisher(t),
		Config:         newTestConfig(""),
		Logger:         newDiscardLogger(),
	})

	// With no admin configured, nobody is the admin, not even the empty address.
	assert.False(t, service.IsAdmin(""))
	assert.False(t, service.IsAdmin("addr-admin"))
}
