// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"mime"
	"net/http"
	"time"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/cliparse"
	"github.com/danielhkuo/southwest-video/contact"
	"github.com/danielhkuo/southwest-video/middleware"
	"github.com/danielhkuo/southwest-video/models"
)

type ContactHandler struct {
	pipeline *contact.Pipeline
	cfg      cliparse.Config
	now      func() time.Time
}

func NewContactHandler(pipeline *contact.Pipeline, cfg cliparse.Config) *ContactHandler {
	return &ContactHandler{pipeline: pipeline, cfg: cfg, now: time.Now}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := parseContactRequest(r)
	if !ok {
		// Wrong shape or types in transport: generic client error, no detail
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	outcome := h.pipeline.Process(r.Context(), middleware.GetClientIP(r), r.UserAgent(), req)

	switch outcome.Status {
	case models.StatusAccepted:
		middleware.JSONResponse(w, http.StatusOK, models.ContactSuccessResponse{
			Message: outcome.Message,
		})
	case models.StatusRejectedValidation:
		middleware.FieldErrorResponse(w, http.StatusBadRequest, outcome.Message, outcome.FieldErrors)
	case models.StatusRejectedBot:
		middleware.ErrorResponse(w, http.StatusBadRequest, outcome.Message)
	case models.StatusRejectedRateLimited:
		middleware.ErrorResponse(w, http.StatusTooManyRequests, outcome.Message)
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, outcome.Message)
	}
}

// FormMeta handles GET /api/contact/form-meta. It issues the form-load
// timestamp and the HMAC token bound to it for clients that use the
// server-signed token variant.
func (h *ContactHandler) FormMeta(w http.ResponseWriter, r *http.Request) {
	ts := h.now().UnixMilli()
	middleware.JSONResponse(w, http.StatusOK, models.FormMetaResponse{
		FormTimestamp: ts,
		FormToken:     auth.GenerateFormToken(ts, h.cfg.FormTokenSalt),
	})
}

// parseContactRequest accepts a JSON or form-encoded body.
func parseContactRequest(r *http.Request) (models.ContactRequest, bool) {
	var req models.ContactRequest

	ct := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil && mediaType == "application/json" {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return models.ContactRequest{}, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		return models.ContactRequest{}, false
	}
	req = models.ContactRequest{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		ProjectType:   r.PostFormValue("projectType"),
		ProjectBudget: r.PostFormValue("projectBudget"),
		Vision:        r.PostFormValue("vision"),
		Website:       r.PostFormValue("website"),
		Phone:         r.PostFormValue("phone"),
		Company:       r.PostFormValue("company"),
		FormTimestamp: r.PostFormValue("formTimestamp"),
		FormToken:     r.PostFormValue("formToken"),
	}
	return req, true
}
