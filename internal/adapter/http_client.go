package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultLockPollInterval = 500 * time.Millisecond

// httpRemoteStore is the HTTP/REST implementation of [RemoteStore]. Each
// instance talks to a single endpoint; authentication is a short-lived JWT
// minted per request, so there is no login round-trip and no token state.
type httpRemoteStore struct {
	client *resty.Client
	name   string

	auth      config.ClientAuth
	clientID  string
	pollEvery time.Duration

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore]
// for a single endpoint. It normalises and validates the base URL, and
// configures the underlying client with the request timeout from adapterCfg.
//
// Returns an error if endpoint is empty or cannot be parsed as a valid URL.
func NewHTTPRemoteStore(endpoint string, adapterCfg config.ClientAdapter, authCfg config.ClientAuth, appCfg config.ClientApp, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pollEvery := adapterCfg.LockPollInterval
	if pollEvery <= 0 {
		pollEvery = defaultLockPollInterval
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpRemoteStore{
		client:    cli,
		name:      baseURL,
		auth:      authCfg,
		clientID:  appCfg.ClientID,
		pollEvery: pollEvery,
		logger:    logger,
	}, nil
}

func (h *httpRemoteStore) Name() string {
	return h.name
}

func (h *httpRemoteStore) GetMetadata(ctx context.Context, ethPublic string) (models.MetadataEnvelope, error) {
	req, err := h.authedRequest(ctx, ethPublic)
	if err != nil {
		return models.MetadataEnvelope{}, err
	}

	resp, err := req.Get("/api/metadata/" + url.PathEscape(ethPublic))
	if err != nil {
		return models.MetadataEnvelope{}, fmt.Errorf("get metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MetadataEnvelope{}, err
	}

	var envelope models.MetadataEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.MetadataEnvelope{}, fmt.Errorf("decode metadata response: %w", err)
	}

	return envelope, nil
}

func (h *httpRemoteStore) SaveMetadata(ctx context.Context, envelope models.MetadataEnvelope) error {
	req, err := h.authedRequest(ctx, envelope.EthPublic)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(envelope).
		Put("/api/metadata/" + url.PathEscape(envelope.EthPublic))
	if err != nil {
		return fmt.Errorf("save metadata request: %w", err)
	}

	return mapHTTPError(resp)
}

// AcquireLock requests the write lease and, while the server answers 409,
// keeps retrying every pollEvery until the lease is granted or ctx is done.
func (h *httpRemoteStore) AcquireLock(ctx context.Context, ethPublic string) (models.LockState, error) {
	ticker := time.NewTicker(h.pollEvery)
	defer ticker.Stop()

	for {
		lock, err := h.requestLock(ctx, ethPublic)
		if err == nil {
			return lock, nil
		}
		if !errors.Is(err, ErrConflict) {
			return models.LockState{}, err
		}

		h.logger.Debug().Str("endpoint", h.name).Str("ethPublic", ethPublic).Msg("write lock is busy, polling")

		select {
		case <-ctx.Done():
			return models.LockState{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (h *httpRemoteStore) requestLock(ctx context.Context, ethPublic string) (models.LockState, error) {
	req, err := h.authedRequest(ctx, ethPublic)
	if err != nil {
		return models.LockState{}, err
	}

	resp, err := req.Post("/api/metadata/" + url.PathEscape(ethPublic) + "/lock")
	if err != nil {
		return models.LockState{}, fmt.Errorf("acquire lock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LockState{}, err
	}

	var lock models.LockState
	if err = json.Unmarshal(resp.Body(), &lock); err != nil {
		return models.LockState{}, fmt.Errorf("decode lock response: %w", err)
	}

	return lock, nil
}

func (h *httpRemoteStore) ReleaseLock(ctx context.Context, ethPublic string) error {
	req, err := h.authedRequest(ctx, ethPublic)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/metadata/" + url.PathEscape(ethPublic) + "/lock")
	if err != nil {
		return fmt.Errorf("release lock request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest mints a fresh short-lived token for ethPublic and attaches it
// as a bearer header.
func (h *httpRemoteStore) authedRequest(ctx context.Context, ethPublic string) (*resty.Request, error) {
	token, err := utils.GenerateJWTToken(h.auth.TokenIssuer, ethPublic, h.clientID, h.auth.TokenDuration, h.auth.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("mint request token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token.String()), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address without host")
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
