// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingEthPublic is returned by DeserializeMetadata when the payload
// carries no wallet identity and no fallback address was supplied.
var ErrMissingEthPublic = errors.New("ethereum public address is not available in payload or fallback")

// MetadataRecord is the per-wallet metadata entity replicated across the
// local store and every remote store. The record is identified by EthPublic;
// every other field carries its own last-modification timestamp (Unix
// seconds, client wall clock) so that concurrent edits made on different
// devices can be reconciled field by field.
//
// Timestamps are assigned by whichever device last wrote the field. Clock
// skew between devices is a known limitation of this scheme: an edit made on
// a device with a fast clock can shadow a genuinely newer edit made
// elsewhere. There is no logical-clock correction.
//
// A MetadataRecord is a value: merging or updating produces a new record,
// never an in-place mutation of a shared instance.
type MetadataRecord struct {
	// EthPublic is the Ethereum address identifying the owning wallet.
	// Immutable once the record exists; records with different EthPublic
	// values must never be merged.
	EthPublic string `json:"eth_public"`

	// DeviceName is the human-readable name of the device that owns the
	// current device share.
	DeviceName          string `json:"device_name"`
	DeviceNameTimestamp int64  `json:"device_name_timestamp"`

	// Email is the account email of the auth provider.
	Email          string `json:"email"`
	EmailTimestamp int64  `json:"email_timestamp"`

	// AuthProvider names the social login provider (e.g. "google",
	// "apple") the wallet was created with.
	AuthProvider          string `json:"auth_provider"`
	AuthProviderTimestamp int64  `json:"auth_provider_timestamp"`

	// PhoneNumber is the recovery phone number.
	PhoneNumber          string `json:"phone_number"`
	PhoneNumberTimestamp int64  `json:"phone_number_timestamp"`

	// Striga holds the banking sub-record.
	Striga Striga `json:"striga"`
}

// Striga is the banking provider sub-record. UserID is optional because not
// every wallet is onboarded with the provider.
type Striga struct {
	UserID          *string `json:"user_id,omitempty"`
	UserIDTimestamp int64   `json:"user_id_timestamp"`
}

// NewMetadataRecord creates an initial record for a freshly set-up wallet.
// Every field is stamped with the caller-supplied wall-clock timestamp
// (Unix seconds); the Striga user id starts empty.
func NewMetadataRecord(ethPublic, deviceName, email, authProvider, phoneNumber string, now int64) MetadataRecord {
	return MetadataRecord{
		EthPublic:             ethPublic,
		DeviceName:            deviceName,
		DeviceNameTimestamp:   now,
		Email:                 email,
		EmailTimestamp:        now,
		AuthProvider:          authProvider,
		AuthProviderTimestamp: now,
		PhoneNumber:           phoneNumber,
		PhoneNumberTimestamp:  now,
		Striga:                Striga{UserIDTimestamp: now},
	}
}

// SetDeviceName updates the device name and re-stamps only its timestamp.
func (m *MetadataRecord) SetDeviceName(name string, now int64) {
	m.DeviceName = name
	m.DeviceNameTimestamp = now
}

// SetEmail updates the email and re-stamps only its timestamp.
func (m *MetadataRecord) SetEmail(email string, now int64) {
	m.Email = email
	m.EmailTimestamp = now
}

// SetAuthProvider updates the auth provider and re-stamps only its timestamp.
func (m *MetadataRecord) SetAuthProvider(provider string, now int64) {
	m.AuthProvider = provider
	m.AuthProviderTimestamp = now
}

// SetPhoneNumber updates the phone number and re-stamps only its timestamp.
func (m *MetadataRecord) SetPhoneNumber(phone string, now int64) {
	m.PhoneNumber = phone
	m.PhoneNumberTimestamp = now
}

// SetStrigaUserID updates the banking user id and re-stamps only its timestamp.
func (m *MetadataRecord) SetStrigaUserID(userID *string, now int64) {
	m.Striga.UserID = userID
	m.Striga.UserIDTimestamp = now
}

// Equal reports whether two records are identical in every field and
// timestamp. The coordinator uses it to decide which replicas actually need
// a write-back after a merge.
func (m MetadataRecord) Equal(other MetadataRecord) bool {
	if m.EthPublic != other.EthPublic ||
		m.DeviceName != other.DeviceName || m.DeviceNameTimestamp != other.DeviceNameTimestamp ||
		m.Email != other.Email || m.EmailTimestamp != other.EmailTimestamp ||
		m.AuthProvider != other.AuthProvider || m.AuthProviderTimestamp != other.AuthProviderTimestamp ||
		m.PhoneNumber != other.PhoneNumber || m.PhoneNumberTimestamp != other.PhoneNumberTimestamp {
		return false
	}
	return m.Striga.Equal(other.Striga)
}

// Equal reports whether two banking sub-records match.
func (s Striga) Equal(other Striga) bool {
	if s.UserIDTimestamp != other.UserIDTimestamp {
		return false
	}
	if (s.UserID == nil) != (other.UserID == nil) {
		return false
	}
	return s.UserID == nil || *s.UserID == *other.UserID
}

// Serialize encodes the record into its JSON wire representation.
func (m MetadataRecord) Serialize() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode metadata record: %w", err)
	}
	return data, nil
}

// DeserializeMetadata decodes a record from its JSON wire representation.
//
// Early payloads were written without the eth_public key, so when it is
// absent the caller-supplied ethAddress is used instead. Missing timestamps
// decode as zero, which makes such fields lose against any stamped value
// during a merge.
func DeserializeMetadata(data []byte, ethAddress string) (MetadataRecord, error) {
	var m MetadataRecord
	if err := json.Unmarshal(data, &m); err != nil {
		return MetadataRecord{}, fmt.Errorf("decode metadata record: %w", err)
	}

	if m.EthPublic == "" {
		if ethAddress == "" {
			return MetadataRecord{}, ErrMissingEthPublic
		}
		m.EthPublic = ethAddress
	}

	return m, nil
}
