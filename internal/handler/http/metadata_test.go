package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockMetadata, _ := newTestHandler(t, ctrl)

	envelope := models.MetadataEnvelope{EthPublic: testEth, Payload: []byte("ciphertext")}
	mockMetadata.EXPECT().GetMetadata(gomock.Any(), testEth).Return(envelope, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/metadata/"+testEth, bearerToken(t, testEth))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.MetadataEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, testEth, got.EthPublic)
	assert.Equal(t, []byte("ciphertext"), got.Payload)
}

func TestGetMetadata_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockMetadata, _ := newTestHandler(t, ctrl)

	mockMetadata.EXPECT().
		GetMetadata(gomock.Any(), testEth).
		Return(models.MetadataEnvelope{}, store.ErrMetadataNotFound)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/metadata/"+testEth, bearerToken(t, testEth))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, mockMetadata, _ := newTestHandler(t, ctrl)

	var saved models.MetadataEnvelope
	mockMetadata.EXPECT().
		SaveMetadata(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, envelope models.MetadataEnvelope) error {
			saved = envelope
			return nil
		})

	body, err := json.Marshal(models.MetadataEnvelope{
		// адрес в теле подменён — ключом записи остаётся адрес из пути
		EthPublic: "0xother",
		Payload:   []byte("ciphertext"),
	})
	require.NoError(t, err)

	resp := putJSON(t, srv.URL+"/api/metadata/"+testEth, bearerToken(t, testEth), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, testEth, saved.EthPublic)
	assert.Equal(t, []byte("ciphertext"), saved.Payload)
}

func TestSaveMetadata_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _, _ := newTestHandler(t, ctrl)

	resp := putJSON(t, srv.URL+"/api/metadata/"+testEth, bearerToken(t, testEth), []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func putJSON(t *testing.T, url, authHeader string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	// дочитываем тело, чтобы соединение вернулось в пул
	t.Cleanup(func() { io.Copy(io.Discard, resp.Body) })

	return resp
}
