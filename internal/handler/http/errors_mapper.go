package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrMetadataNotFound: http.StatusNotFound,
	store.ErrMetadataNotSaved: http.StatusInternalServerError,
	store.ErrLockHeld:         http.StatusConflict,
	store.ErrLockNotOwned:     http.StatusForbidden,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
