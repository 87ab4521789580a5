package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type httpHandler struct {
	service CertifyService
	logger  *slog.Logger
}

func NewHTTPHandler(service CertifyService, logger *slog.Logger) *httpHandler {
	return &httpHandler{service: service, logger: logger}
}

// registerRoutes mounts the REST surface. Only verify sits behind the
// bearer middleware; signing up and in are how tokens are obtained.
func (h *httpHandler) registerRoutes(mux *http.ServeMux, authed func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /health_check", h.handleHealthCheck)
	mux.HandleFunc("POST /sign_up", h.handleSignUp)
	mux.HandleFunc("POST /sign_in", h.handleSignIn)

	verify := authed(http.HandlerFunc(h.handleVerify))
	mux.Handle("POST /verify", verify)
	mux.Handle("GET /verify", verify)
}

func (h *httpHandler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<h1>Certify server health ok.</h1>"))
}

func (h *httpHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateEmail):
			// Clients match on this body.
			http.Error(w, "DuplicateUserEmail", http.StatusInternalServerError)
		default:
			h.logger.Error("failed to sign up", slog.Any("error", err))
			http.Error(w, "failed to sign up", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, resp)
}

func (h *httpHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "wrong credentials", http.StatusUnauthorized)
		default:
			h.logger.Error("failed to sign in", slog.Any("error", err))
			http.Error(w, "failed to sign in", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, resp)
}

// handleVerify runs after the middleware accepted the token, so the
// answer is always true.
func (h *httpHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, true)
}

func (h *httpHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
