// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrDifferentMetadata is returned when a merge is attempted across records
// belonging to different wallets. A synchronization pass that hits this
// error must abort without writing to any replica.
var ErrDifferentMetadata = errors.New("metadata records belong to different wallets")

// MergeMetadata reconciles two records describing the same wallet using a
// field-level last-writer-wins rule: for every field/timestamp pair the side
// with the strictly later timestamp wins, and on an exact timestamp tie the
// right-hand operand wins. The winning side's timestamp is carried into the
// result unchanged.
//
// Because the rule is applied per field, the result may combine values from
// both sides (e.g. DeviceName from lhs and PhoneNumber from rhs). A naive
// whole-record comparison would silently drop one of two concurrent edits
// made to different fields on different devices.
//
// The rhs tie-break makes the fold deterministic only if callers feed
// replicas in a stable order: local first, then remotes in slice order.
func MergeMetadata(lhs, rhs MetadataRecord) (MetadataRecord, error) {
	if lhs.EthPublic != rhs.EthPublic {
		return MetadataRecord{}, ErrDifferentMetadata
	}

	merged := MetadataRecord{EthPublic: lhs.EthPublic}

	merged.DeviceName, merged.DeviceNameTimestamp = mergeField(
		lhs.DeviceName, lhs.DeviceNameTimestamp, rhs.DeviceName, rhs.DeviceNameTimestamp)
	merged.Email, merged.EmailTimestamp = mergeField(
		lhs.Email, lhs.EmailTimestamp, rhs.Email, rhs.EmailTimestamp)
	merged.AuthProvider, merged.AuthProviderTimestamp = mergeField(
		lhs.AuthProvider, lhs.AuthProviderTimestamp, rhs.AuthProvider, rhs.AuthProviderTimestamp)
	merged.PhoneNumber, merged.PhoneNumberTimestamp = mergeField(
		lhs.PhoneNumber, lhs.PhoneNumberTimestamp, rhs.PhoneNumber, rhs.PhoneNumberTimestamp)
	merged.Striga.UserID, merged.Striga.UserIDTimestamp = mergeField(
		lhs.Striga.UserID, lhs.Striga.UserIDTimestamp, rhs.Striga.UserID, rhs.Striga.UserIDTimestamp)

	return merged, nil
}

// mergeField resolves one field/timestamp pair. rhs wins ties.
func mergeField[T any](lhsValue T, lhsTS int64, rhsValue T, rhsTS int64) (T, int64) {
	if rhsTS >= lhsTS {
		return rhsValue, rhsTS
	}
	return lhsValue, lhsTS
}
