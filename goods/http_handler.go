package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

type httpHandler struct {
	service GoodsService
	logger  *slog.Logger
}

func NewHTTPHandler(service GoodsService, logger *slog.Logger) *httpHandler {
	return &httpHandler{service: service, logger: logger}
}

// The list and detail routes accept both verbs; storefront clients POST
// while the params ride in the query string either way.
func (h *httpHandler) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health_check", h.handleHealthCheck)
	mux.HandleFunc("GET /goods_list", h.handleGoodsList)
	mux.HandleFunc("POST /goods_list", h.handleGoodsList)
	mux.HandleFunc("GET /goods_detail", h.handleGoodsDetail)
	mux.HandleFunc("POST /goods_detail", h.handleGoodsDetail)
}

func (h *httpHandler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<h1>Goods server health ok.</h1>"))
}

func (h *httpHandler) handleGoodsList(w http.ResponseWriter, r *http.Request) {
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

	summaries, err := h.service.ListGoods(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("failed to list goods", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// A page past the end is an empty list; render [] rather than null.
	if summaries == nil {
		summaries = []GoodsSummary{}
	}
	h.writeJSON(w, summaries)
}

func (h *httpHandler) handleGoodsDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("goods_id"), 10, 32)
	if err != nil {
		http.Error(w, "invalid goods_id", http.StatusBadRequest)
		return
	}

	detail, err := h.service.GetGoodsDetail(r.Context(), int32(id))
	if errors.Is(err, ErrGoodsNotFound) {
		http.Error(w, "goods not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to get goods detail",
			slog.Int64("goods_id", id),
			slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, detail)
}

func (h *httpHandler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// permissiveCORS lets browser storefronts on any origin call the
// catalog. Preflights are answered here and never reach the mux.
func permissiveCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
