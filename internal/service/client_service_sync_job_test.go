package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
)

// countingMetadataService считает вызовы Synchronize
type countingMetadataService struct {
	syncCalls atomic.Int32
}

func (s *countingMetadataService) Synchronize(_ context.Context) (models.MetadataRecord, error) {
	s.syncCalls.Add(1)
	return models.MetadataRecord{}, nil
}

func (s *countingMetadataService) Update(_ context.Context, _ func(*models.MetadataRecord, int64)) (models.MetadataRecord, error) {
	return models.MetadataRecord{}, nil
}

func (s *countingMetadataService) State() models.MetadataState {
	return models.MetadataState{}
}

func (s *countingMetadataService) Subscribe() <-chan models.MetadataState {
	return make(chan models.MetadataState)
}

func TestClientSyncJob_RunsPeriodically(t *testing.T) {
	metadata := &countingMetadataService{}
	job := NewClientSyncJob(metadata)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	job.Stop()

	// за ~100мс с тиком 10мс должно пройти несколько пассов
	assert.GreaterOrEqual(t, metadata.syncCalls.Load(), int32(2))
}

func TestClientSyncJob_StopHaltsPasses(t *testing.T) {
	metadata := &countingMetadataService{}
	job := NewClientSyncJob(metadata)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	after := metadata.syncCalls.Load()
	time.Sleep(50 * time.Millisecond)

	// после Stop счётчик больше не растёт
	assert.Equal(t, after, metadata.syncCalls.Load())
}

func TestClientSyncJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewClientSyncJob(&countingMetadataService{})
	job.Stop()
	job.Stop()
}

func TestClientSyncJob_RestartReplacesPreviousRun(t *testing.T) {
	metadata := &countingMetadataService{}
	job := NewClientSyncJob(metadata)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, metadata.syncCalls.Load(), int32(1))
}

func TestClientSyncJob_ContextCancelStopsJob(t *testing.T) {
	metadata := &countingMetadataService{}
	job := NewClientSyncJob(metadata)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := metadata.syncCalls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, metadata.syncCalls.Load())

	job.Stop()
}
