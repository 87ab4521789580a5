package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type httpHandler struct {
	service InventoryService
}

func NewHTTPHandler(service InventoryService) *httpHandler {
	return &httpHandler{service: service}
}

func (h *httpHandler) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health_check", h.handleHealthCheck)
	mux.HandleFunc("GET /query_inventory", h.handleQueryInventory)
	mux.HandleFunc("GET /query_inventory_change", h.handleQueryInventoryChange)
}

func (h *httpHandler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *httpHandler) handleQueryInventory(w http.ResponseWriter, r *http.Request) {
	id, err := parseInventoryID(r)
	if err != nil {
		http.Error(w, "invalid inventory id", http.StatusBadRequest)
		return
	}

	inv, err := h.service.Query(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "inventory not found", http.StatusNotFound)
		return
	}
	if err != nil {
		zap.L().Error("failed to query inventory", zap.Int32("inventory_id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, inv)
}

func (h *httpHandler) handleQueryInventoryChange(w http.ResponseWriter, r *http.Request) {
	id, err := parseInventoryID(r)
	if err != nil {
		http.Error(w, "invalid inventory id", http.StatusBadRequest)
		return
	}

	changes, err := h.service.History(r.Context(), id)
	if err != nil {
		zap.L().Error("failed to query inventory changes", zap.Int32("inventory_id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// An unknown id has an empty ledger; render [] rather than null.
	if changes == nil {
		changes = []InventoryChange{}
	}

	writeJSON(w, changes)
}

func parseInventoryID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}
