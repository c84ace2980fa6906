package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (h *Handler) getMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ethPublic, found := utils.GetEthPublicFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getMetadata").Msg("no wallet address was given")
		http.Error(w, "no wallet address was given", http.StatusBadRequest)
		return
	}

	envelope, err := h.services.MetadataStoreService.GetMetadata(ctx, ethPublic)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMetadata").Msg("error getting metadata envelope")
		http.Error(w, "error getting metadata envelope", statusFromError(err))
		return
	}

	utils.WriteJSON(w, envelope, http.StatusOK)
}

func (h *Handler) saveMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ethPublic, found := utils.GetEthPublicFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveMetadata").Msg("no wallet address was given")
		http.Error(w, "no wallet address was given", http.StatusBadRequest)
		return
	}

	var envelope models.MetadataEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		log.Err(err).Str("func", "*Handler.saveMetadata").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the path is authoritative for the record key
	envelope.EthPublic = ethPublic

	if err := h.services.MetadataStoreService.SaveMetadata(ctx, envelope); err != nil {
		log.Err(err).Str("func", "*Handler.saveMetadata").Msg("error saving metadata envelope")
		http.Error(w, "error saving metadata envelope", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
