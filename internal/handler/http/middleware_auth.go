package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// and validates its signature, issuer and expiry via
// [utils.ValidateAndParseJWTToken]. The token's subject is the wallet address
// the caller acts on; it must match the {ethPublic} path parameter, otherwise
// the request is rejected with HTTP 403 — one wallet's token grants no access
// to another wallet's record.
//
// On success the wallet address and the caller's client id are stored in the
// request context under [utils.EthPublicCtxKey] and [utils.ClientIDCtxKey]
// before delegating to the next handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if pathEthPublic := chi.URLParam(r, "ethPublic"); pathEthPublic != token.EthPublic {
			log.Err(ErrWalletMismatch).Str("path", pathEthPublic).Str("subject", token.EthPublic).Send()
			http.Error(w, ErrWalletMismatch.Error(), http.StatusForbidden)
			return
		}

		// Store the wallet address and client id in the context so that
		// downstream handlers can retrieve them without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.EthPublicCtxKey, token.EthPublic)
		ctx = context.WithValue(ctx, utils.ClientIDCtxKey, token.ClientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
