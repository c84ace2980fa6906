package models

// SyncStatus describes where the coordinator currently is within a
// synchronization pass.
type SyncStatus string

const (
	// SyncStatusIdle means no pass has run yet.
	SyncStatusIdle SyncStatus = "idle"

	// SyncStatusFetching means replicas are being loaded or merged.
	SyncStatusFetching SyncStatus = "fetching"

	// SyncStatusReady means the last pass finished (possibly with Err set).
	SyncStatusReady SyncStatus = "ready"
)

// MetadataState is the published output of the coordinator: the latest
// merged record together with the outcome of the last pass. A failed pass
// sets Err but leaves the previous Value untouched — observers always see
// the last known-good record.
type MetadataState struct {
	Status SyncStatus
	Value  *MetadataRecord
	Err    error
}
