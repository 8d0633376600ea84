// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/cliparse"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/middleware"
	"github.com/danielhkuo/southwest-video/models"
)

const defaultLeadPageSize = 50

type LeadHandler struct {
	store db.LeadStore
	cfg   cliparse.Config
}

func NewLeadHandler(store db.LeadStore, cfg cliparse.Config) *LeadHandler {
	return &LeadHandler{store: store, cfg: cfg}
}

// List handles GET /api/leads (admin only, newest first)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(auth.LeadArchiveKeyID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Lead archive is not configured")
		return
	}

	limit := queryInt(r, "limit", defaultLeadPageSize)
	offset := queryInt(r, "offset", 0)

	leads, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("failed to list leads", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeadListResponse{
		Leads: leads,
		Count: len(leads),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
