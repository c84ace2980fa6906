// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReplica — реплика с подсчётом вызовов, без mockgen (поведение задаётся
// полями напрямую).
type stubReplica struct {
	name  string
	local bool

	record  *models.MetadataRecord
	loadErr error
	saveErr error
	lockErr error

	mu          sync.Mutex
	loadCalls   int
	saveCalls   int
	lockCalls   int
	unlockCalls int
	saved       *models.MetadataRecord
}

func (r *stubReplica) Name() string { return r.name }
func (r *stubReplica) Local() bool  { return r.local }

func (r *stubReplica) Load(_ context.Context, _ models.UserWallet) (*models.MetadataRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadCalls++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.record == nil {
		return nil, nil
	}
	record := *r.record
	return &record, nil
}

func (r *stubReplica) Save(_ context.Context, _ models.UserWallet, record models.MetadataRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = &record
	r.record = &record
	return nil
}

func (r *stubReplica) AcquireWriteLock(_ context.Context, _ models.UserWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lockCalls++
	return r.lockErr
}

func (r *stubReplica) ReleaseWriteLock(_ context.Context, _ models.UserWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unlockCalls++
	return nil
}

// stubObserver копит все наблюдённые ошибки
type stubObserver struct {
	mu     sync.Mutex
	errors []error
}

func (o *stubObserver) ObserveError(_ context.Context, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errors = append(o.errors, err)
}

func (o *stubObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.errors)
}

const testEth = "0xabc123"

func testWalletSession() *walletSession {
	eth := testEth
	session := NewWalletSession()
	session.SetUserWallet(models.UserWallet{SeedPhrase: "salute wreck glove ...", EthAddress: &eth})
	return session
}

func syncedRecord(now int64) *models.MetadataRecord {
	record := models.NewMetadataRecord(testEth, "iPhone", "a@b.c", "google", "+7900", now)
	return &record
}

func newTestMetadataSvc(replicas ...Replica) (*clientMetadataService, *stubObserver) {
	observer := &stubObserver{}
	svc := NewClientMetadataService(testWalletSession(), replicas, observer, logger.Nop()).(*clientMetadataService)
	return svc, observer
}

// ── Synchronize ──────────────────────────────────────────────────────────────

func TestSynchronize_AllReplicasInSync_NoWrites(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true, record: record}
	remote1 := &stubReplica{name: "remote-1", record: record}
	remote2 := &stubReplica{name: "remote-2", record: record}

	svc, observer := newTestMetadataSvc(local, remote1, remote2)

	merged, err := svc.Synchronize(context.Background())
	require.NoError(t, err)
	assert.True(t, merged.Equal(*record))

	// все совпадают — ни одной записи и ни одной блокировки
	for _, r := range []*stubReplica{local, remote1, remote2} {
		assert.Equal(t, 1, r.loadCalls, r.name)
		assert.Zero(t, r.saveCalls, r.name)
		assert.Zero(t, r.lockCalls, r.name)
	}
	assert.Zero(t, observer.count())
}

func TestSynchronize_NewerRemoteFieldPropagates(t *testing.T) {
	stale := syncedRecord(100)
	fresh := syncedRecord(100)
	fresh.SetEmail("new@b.c", 200)

	local := &stubReplica{name: "local", local: true, record: stale}
	remote1 := &stubReplica{name: "remote-1", record: fresh}
	remote2 := &stubReplica{name: "remote-2", record: stale}

	svc, _ := newTestMetadataSvc(local, remote1, remote2)

	merged, err := svc.Synchronize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", merged.Email)
	assert.Equal(t, int64(200), merged.EmailTimestamp)

	// запись получают только отстающие реплики
	assert.Equal(t, 1, local.saveCalls)
	assert.Zero(t, remote1.saveCalls)
	assert.Equal(t, 1, remote2.saveCalls)

	// удалённая запись в скобках блокировки, локальная — без
	assert.Zero(t, local.lockCalls)
	assert.Equal(t, 1, remote2.lockCalls)
	assert.Equal(t, 1, remote2.unlockCalls)
}

func TestSynchronize_ConcurrentEditsOfDifferentFieldsCombine(t *testing.T) {
	left := syncedRecord(100)
	left.SetDeviceName("Pixel", 150)
	right := syncedRecord(100)
	right.SetPhoneNumber("+7911", 160)

	local := &stubReplica{name: "local", local: true, record: left}
	remote := &stubReplica{name: "remote-1", record: right}

	svc, _ := newTestMetadataSvc(local, remote)

	merged, err := svc.Synchronize(context.Background())
	require.NoError(t, err)

	// поля сливаются независимо: результат берёт новое с обеих сторон
	assert.Equal(t, "Pixel", merged.DeviceName)
	assert.Equal(t, "+7911", merged.PhoneNumber)
	assert.Equal(t, 1, local.saveCalls)
	assert.Equal(t, 1, remote.saveCalls)
}

func TestSynchronize_UnreachableRemoteSkipped(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true, record: record}
	dead := &stubReplica{name: "remote-1", loadErr: errors.New("connection refused")}
	alive := &stubReplica{name: "remote-2", record: record}

	svc, observer := newTestMetadataSvc(local, dead, alive)

	merged, err := svc.Synchronize(context.Background())
	require.NoError(t, err)
	assert.True(t, merged.Equal(*record))

	// упавшая реплика не получает запись и попадает в наблюдатель
	assert.Zero(t, dead.saveCalls)
	assert.Equal(t, 1, observer.count())
}

func TestSynchronize_LocalLoadFailureAbortsPass(t *testing.T) {
	local := &stubReplica{name: "local", local: true, loadErr: errors.New("disk corrupted")}
	remote := &stubReplica{name: "remote-1", record: syncedRecord(100)}

	svc, _ := newTestMetadataSvc(local, remote)

	_, err := svc.Synchronize(context.Background())
	require.Error(t, err)

	// пасс прерван до записи
	assert.Zero(t, remote.saveCalls)

	state := svc.State()
	assert.Equal(t, models.SyncStatusReady, state.Status)
	assert.Error(t, state.Err)
}

func TestSynchronize_WriteFailureAggregatedButMergedPublished(t *testing.T) {
	stale := syncedRecord(100)
	fresh := syncedRecord(100)
	fresh.SetEmail("new@b.c", 200)

	local := &stubReplica{name: "local", local: true, record: fresh}
	broken := &stubReplica{name: "remote-1", record: stale, saveErr: errors.New("write refused")}
	healthy := &stubReplica{name: "remote-2", record: stale}

	svc, observer := newTestMetadataSvc(local, broken, healthy)

	merged, err := svc.Synchronize(context.Background())
	require.ErrorIs(t, err, ErrRemoteSyncFailure)

	// слитый результат возвращается и публикуется несмотря на сбой записи
	assert.Equal(t, "new@b.c", merged.Email)
	state := svc.State()
	require.NotNil(t, state.Value)
	assert.Equal(t, "new@b.c", state.Value.Email)
	assert.ErrorIs(t, state.Err, ErrRemoteSyncFailure)

	// здоровая реплика записана, блокировка сломанной снята
	assert.Equal(t, 1, healthy.saveCalls)
	assert.Equal(t, 1, broken.unlockCalls)
	assert.GreaterOrEqual(t, observer.count(), 1)
}

func TestSynchronize_LockReleasedOnSaveFailure(t *testing.T) {
	stale := syncedRecord(100)
	fresh := syncedRecord(100)
	fresh.SetEmail("new@b.c", 200)

	local := &stubReplica{name: "local", local: true, record: fresh}
	broken := &stubReplica{name: "remote-1", record: stale, saveErr: errors.New("write refused")}

	svc, _ := newTestMetadataSvc(local, broken)

	_, err := svc.Synchronize(context.Background())
	require.ErrorIs(t, err, ErrRemoteSyncFailure)

	assert.Equal(t, 1, broken.lockCalls)
	assert.Equal(t, 1, broken.unlockCalls)
}

func TestSynchronize_NoWalletSelected(t *testing.T) {
	local := &stubReplica{name: "local", local: true}
	remote := &stubReplica{name: "remote-1", record: syncedRecord(100)}
	observer := &stubObserver{}
	svc := NewClientMetadataService(NewWalletSession(), []Replica{local, remote}, observer, logger.Nop()).(*clientMetadataService)

	_, err := svc.Synchronize(context.Background())
	require.ErrorIs(t, err, ErrNoWalletSelected)

	// ни одного обращения к репликам, ровно одно уведомление наблюдателя
	for _, r := range []*stubReplica{local, remote} {
		assert.Zero(t, r.loadCalls, r.name)
		assert.Zero(t, r.saveCalls, r.name)
		assert.Zero(t, r.lockCalls, r.name)
	}
	require.Equal(t, 1, observer.count())
	assert.ErrorIs(t, observer.errors[0], ErrNoWalletSelected)

	state := svc.State()
	assert.ErrorIs(t, state.Err, ErrNoWalletSelected)
}

func TestSynchronize_NotWeb3User(t *testing.T) {
	session := NewWalletSession()
	session.SetUserWallet(models.UserWallet{SeedPhrase: "seed"}) // без eth-адреса

	remote := &stubReplica{name: "remote-1", record: syncedRecord(100)}
	observer := &stubObserver{}
	svc := NewClientMetadataService(session, []Replica{remote}, observer, logger.Nop()).(*clientMetadataService)

	_, err := svc.Synchronize(context.Background())
	require.ErrorIs(t, err, ErrNotWeb3AuthUser)
	assert.Zero(t, remote.loadCalls)

	require.Equal(t, 1, observer.count())
	assert.ErrorIs(t, observer.errors[0], ErrNotWeb3AuthUser)
}

func TestSynchronize_NoRecordsAnywhere(t *testing.T) {
	local := &stubReplica{name: "local", local: true}
	remote := &stubReplica{name: "remote-1"}

	svc, _ := newTestMetadataSvc(local, remote)

	_, err := svc.Synchronize(context.Background())
	require.ErrorIs(t, err, ErrNoMetadataFound)
}

func TestSynchronize_RemoteOnlyRecordSeedsLocal(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true}
	remote := &stubReplica{name: "remote-1", record: record}

	svc, _ := newTestMetadataSvc(local, remote)

	merged, err := svc.Synchronize(context.Background())
	require.NoError(t, err)
	assert.True(t, merged.Equal(*record))

	// пустая локальная реплика получает слитую запись
	require.NotNil(t, local.saved)
	assert.True(t, local.saved.Equal(*record))
	assert.Zero(t, remote.saveCalls)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdate_StampsMutatedFieldAndSynchronizes(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true, record: record}
	remote := &stubReplica{name: "remote-1", record: record}

	svc, _ := newTestMetadataSvc(local, remote)
	svc.now = func() int64 { return 500 }

	merged, err := svc.Update(context.Background(), func(r *models.MetadataRecord, now int64) {
		r.SetEmail("updated@b.c", now)
	})
	require.NoError(t, err)

	assert.Equal(t, "updated@b.c", merged.Email)
	assert.Equal(t, int64(500), merged.EmailTimestamp)

	// обновление дошло до удалённой реплики
	require.NotNil(t, remote.saved)
	assert.Equal(t, "updated@b.c", remote.saved.Email)
}

func TestUpdate_CreatesRecordWhenLocalAbsent(t *testing.T) {
	local := &stubReplica{name: "local", local: true}

	svc, _ := newTestMetadataSvc(local)
	svc.now = func() int64 { return 500 }

	merged, err := svc.Update(context.Background(), func(r *models.MetadataRecord, now int64) {
		r.SetDeviceName("Pixel", now)
	})
	require.NoError(t, err)

	assert.Equal(t, testEth, merged.EthPublic)
	assert.Equal(t, "Pixel", merged.DeviceName)
	assert.Equal(t, int64(500), merged.DeviceNameTimestamp)
	// незатронутые поля остаются непроставленными и проиграют любой слив
	assert.Zero(t, merged.EmailTimestamp)
}

func TestUpdate_ConcurrentUpdatesAreSerialized(t *testing.T) {
	local := &stubReplica{name: "local", local: true, record: syncedRecord(100)}

	svc, _ := newTestMetadataSvc(local)
	svc.now = func() int64 { return 500 }

	// каждый Update держит мьютекс пасса на всём протяжении
	// load→mutate→save, поэтому второй видит запись первого
	errs := make(chan error, 2)
	go func() {
		_, err := svc.Update(context.Background(), func(r *models.MetadataRecord, now int64) {
			r.SetEmail("x@b.c", now)
		})
		errs <- err
	}()
	go func() {
		_, err := svc.Update(context.Background(), func(r *models.MetadataRecord, now int64) {
			r.SetPhoneNumber("+7999", now)
		})
		errs <- err
	}()

	for i := 0; i < 2; i++ {
		require.NoError(t, <-errs)
	}

	require.NotNil(t, local.record)
	assert.Equal(t, "x@b.c", local.record.Email)
	assert.Equal(t, "+7999", local.record.PhoneNumber)
}

// ── State / Subscribe ────────────────────────────────────────────────────────

func TestState_InitiallyIdle(t *testing.T) {
	svc, _ := newTestMetadataSvc(&stubReplica{name: "local", local: true})

	state := svc.State()
	assert.Equal(t, models.SyncStatusIdle, state.Status)
	assert.Nil(t, state.Value)
	assert.NoError(t, state.Err)
}

func TestSubscribe_ReceivesPublishedStates(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true, record: record}

	svc, _ := newTestMetadataSvc(local)
	ch := svc.Subscribe()

	_, err := svc.Synchronize(context.Background())
	require.NoError(t, err)

	// fetching, затем ready
	first := <-ch
	assert.Equal(t, models.SyncStatusFetching, first.Status)

	second := <-ch
	assert.Equal(t, models.SyncStatusReady, second.Status)
	require.NotNil(t, second.Value)
	assert.True(t, second.Value.Equal(*record))
}

func TestFailedPassKeepsLastKnownGoodValue(t *testing.T) {
	record := syncedRecord(100)
	local := &stubReplica{name: "local", local: true, record: record}

	svc, _ := newTestMetadataSvc(local)

	_, err := svc.Synchronize(context.Background())
	require.NoError(t, err)

	// следующий пасс падает на загрузке локальной реплики
	local.loadErr = errors.New("disk corrupted")
	_, err = svc.Synchronize(context.Background())
	require.Error(t, err)

	state := svc.State()
	assert.Error(t, state.Err)
	// значение не регрессирует к «нет данных»
	require.NotNil(t, state.Value)
	assert.True(t, state.Value.Equal(*record))
}
