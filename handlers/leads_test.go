// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/models"
	"github.com/danielhkuo/southwest-video/testutil"
)

func TestListLeadsRequiresAdminKey(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewLeadHandler(db.NewMemoryLeadStore(), cfg)

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "not-the-key", http.StatusUnauthorized},
		{"valid key", auth.GenerateAdminKey(auth.LeadArchiveKeyID, cfg.AdminKeySalt), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/leads", nil, map[string]string{"X-Admin-Key": tt.key})
			w := httptest.NewRecorder()
			handler.List(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestListLeads(t *testing.T) {
	cfg := testutil.GetTestConfig()
	store := db.NewMemoryLeadStore()
	handler := NewLeadHandler(store, cfg)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"First Lead", "Second Lead", "Third Lead"} {
		id, _ := auth.GenerateID(16)
		err := store.Insert(context.Background(), models.Lead{
			ID:            id,
			Name:          name,
			Email:         "lead@example.com",
			ProjectType:   "Corporate Film",
			ProjectBudget: "£2k - £5k",
			Vision:        "A project brief long enough to be realistic.",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Failed to insert lead: %v", err)
		}
	}

	adminKey := auth.GenerateAdminKey(auth.LeadArchiveKeyID, cfg.AdminKeySalt)
	req := testutil.MakeRequest("GET", "/api/leads?limit=2", nil, map[string]string{"X-Admin-Key": adminKey})
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LeadListResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 2 {
		t.Errorf("Expected 2 leads with limit=2, got %d", resp.Count)
	}
	if len(resp.Leads) != 2 || resp.Leads[0].Name != "Third Lead" {
		t.Errorf("Expected newest lead first, got %+v", resp.Leads)
	}
}

func TestListLeadsNoStore(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewLeadHandler(nil, cfg)

	adminKey := auth.GenerateAdminKey(auth.LeadArchiveKeyID, cfg.AdminKeySalt)
	req := testutil.MakeRequest("GET", "/api/leads", nil, map[string]string{"X-Admin-Key": adminKey})
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
