package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

func (h *Handler) acquireLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ethPublic, found := utils.GetEthPublicFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.acquireLock").Msg("no wallet address was given")
		http.Error(w, "no wallet address was given", http.StatusBadRequest)
		return
	}

	// the lease owner is the authenticated client, never taken from the body
	clientID, found := utils.GetClientIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.acquireLock").Msg("no client id was given")
		http.Error(w, "no client id was given", http.StatusBadRequest)
		return
	}

	lock, err := h.services.LockService.AcquireLock(ctx, ethPublic, clientID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.acquireLock").Msg("error acquiring write lock")
		http.Error(w, "error acquiring write lock", statusFromError(err))
		return
	}

	utils.WriteJSON(w, lock, http.StatusOK)
}

func (h *Handler) releaseLock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ethPublic, found := utils.GetEthPublicFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.releaseLock").Msg("no wallet address was given")
		http.Error(w, "no wallet address was given", http.StatusBadRequest)
		return
	}

	clientID, found := utils.GetClientIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.releaseLock").Msg("no client id was given")
		http.Error(w, "no client id was given", http.StatusBadRequest)
		return
	}

	if err := h.services.LockService.ReleaseLock(ctx, ethPublic, clientID); err != nil {
		log.Err(err).Str("func", "*Handler.releaseLock").Msg("error releasing write lock")
		http.Error(w, "error releasing write lock", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
