package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLockOwner = "client-42"

func TestLockService_AcquireLock_PassesConfiguredTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockLockRepository(ctrl)
	svc := NewLockService(mockRepo, config.Locks{LeaseTTL: 45 * time.Second}, logger.Nop())
	ctx := context.Background()

	granted := models.LockState{EthPublic: testEth, Owner: testLockOwner}
	mockRepo.EXPECT().AcquireLock(ctx, testEth, testLockOwner, 45*time.Second).Return(granted, nil)

	got, err := svc.AcquireLock(ctx, testEth, testLockOwner)
	require.NoError(t, err)
	assert.Equal(t, granted, got)
}

func TestLockService_AcquireLock_DefaultTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockLockRepository(ctrl)

	// TTL не задан в конфиге — подставляется дефолтный
	svc := NewLockService(mockRepo, config.Locks{}, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().AcquireLock(ctx, testEth, testLockOwner, defaultLeaseTTL).Return(models.LockState{}, nil)

	_, err := svc.AcquireLock(ctx, testEth, testLockOwner)
	require.NoError(t, err)
}

func TestLockService_AcquireLock_Held(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockLockRepository(ctrl)
	svc := NewLockService(mockRepo, config.Locks{}, logger.Nop())
	ctx := context.Background()

	foreign := models.LockState{EthPublic: testEth, Owner: "client-other"}
	mockRepo.EXPECT().AcquireLock(ctx, testEth, testLockOwner, gomock.Any()).Return(foreign, store.ErrLockHeld)

	got, err := svc.AcquireLock(ctx, testEth, testLockOwner)
	require.ErrorIs(t, err, store.ErrLockHeld)
	assert.Equal(t, "client-other", got.Owner)
}

func TestLockService_AcquireLock_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewLockService(mock.NewMockLockRepository(ctrl), config.Locks{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.AcquireLock(ctx, "", testLockOwner)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.AcquireLock(ctx, testEth, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLockService_ReleaseLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockLockRepository(ctrl)
	svc := NewLockService(mockRepo, config.Locks{}, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().ReleaseLock(ctx, testEth, testLockOwner).Return(nil)

	require.NoError(t, svc.ReleaseLock(ctx, testEth, testLockOwner))
}

func TestLockService_ReleaseLock_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockLockRepository(ctrl)
	svc := NewLockService(mockRepo, config.Locks{}, logger.Nop())
	ctx := context.Background()

	mockRepo.EXPECT().ReleaseLock(ctx, testEth, testLockOwner).Return(store.ErrLockNotOwned)

	err := svc.ReleaseLock(ctx, testEth, testLockOwner)
	require.ErrorIs(t, err, store.ErrLockNotOwned)
}

func TestLockService_ReleaseLock_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewLockService(mock.NewMockLockRepository(ctrl), config.Locks{}, logger.Nop())

	err := svc.ReleaseLock(context.Background(), testEth, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
