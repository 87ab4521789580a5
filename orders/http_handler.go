package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/minimart/minimart/common/auth"
)

type httpHandler struct {
	service OrdersService
	logger  *slog.Logger
}

func NewHTTPHandler(service OrdersService, logger *slog.Logger) *httpHandler {
	return &httpHandler{service: service, logger: logger}
}

// registerRoutes mounts the REST surface. Placement and token minting
// sit behind the bearer middleware; listing and health do not.
func (h *httpHandler) registerRoutes(mux *http.ServeMux, authed func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /health_check", h.handleHealthCheck)
	mux.HandleFunc("GET /orders", h.handleListOrders)
	mux.Handle("POST /add_order", authed(http.HandlerFunc(h.handleAddOrder)))
	mux.Handle("GET /request_order_token", authed(http.HandlerFunc(h.handleOrderToken)))
}

func (h *httpHandler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<h1>Order server health ok.</h1>"))
}

type addOrderResponse struct {
	Description string `json:"description"`
}

func (h *httpHandler) handleAddOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req AddOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.CreateOrder(r.Context(), claims.UserID, req); err != nil {
		h.logger.Error("failed to create order",
			slog.String("user_id", claims.UserID.String()),
			slog.Any("error", err),
		)
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, addOrderResponse{Description: "order accepted."})
}

func (h *httpHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	pageSize, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 64)
	if err != nil {
		http.Error(w, "invalid page_size", http.StatusBadRequest)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID, page, pageSize)
	if err != nil {
		h.logger.Error("failed to list orders",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		http.Error(w, "failed to list orders", http.StatusInternalServerError)
		return
	}

	if orders == nil {
		// Render [] rather than null on an empty page.
		orders = []Order{}
	}
	h.writeJSON(w, orders)
}

type orderTokenResponse struct {
	Token int64 `json:"token"`
}

func (h *httpHandler) handleOrderToken(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, orderTokenResponse{Token: h.service.NewOrderToken(r.Context())})
}

func (h *httpHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
