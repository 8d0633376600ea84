// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/danielhkuo/southwest-video/models"
)

// LeadStore archives accepted submissions.
type LeadStore interface {
	Insert(ctx context.Context, lead models.Lead) error
	List(ctx context.Context, limit, offset int) ([]models.Lead, error)
}

// SQLLeadStore persists leads through database/sql.
type SQLLeadStore struct {
	db *sql.DB
}

func NewSQLLeadStore(db *sql.DB) *SQLLeadStore {
	return &SQLLeadStore{db: db}
}

func (s *SQLLeadStore) Insert(ctx context.Context, lead models.Lead) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lead (id, name, email, project_type, project_budget, vision, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, lead.ID, lead.Name, lead.Email, lead.ProjectType, lead.ProjectBudget, lead.Vision,
		lead.IPHash, lead.UserAgent, lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// List returns leads newest first.
func (s *SQLLeadStore) List(ctx context.Context, limit, offset int) ([]models.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, project_type, project_budget, vision, ip_hash, user_agent, created_at
		FROM lead
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		var ipHash, userAgent sql.NullString
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.ProjectType,
			&lead.ProjectBudget, &lead.Vision, &ipHash, &userAgent, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		lead.IPHash = ipHash.String
		lead.UserAgent = userAgent.String
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads: %w", err)
	}
	return leads, nil
}

// MemoryLeadStore is an in-process LeadStore for tests and database-less
// deployments.
type MemoryLeadStore struct {
	mu    sync.RWMutex
	leads []models.Lead
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{}
}

func (m *MemoryLeadStore) Insert(ctx context.Context, lead models.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads = append(m.leads, lead)
	return nil
}

func (m *MemoryLeadStore) List(ctx context.Context, limit, offset int) ([]models.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Newest first
	out := make([]models.Lead, len(m.leads))
	copy(out, m.leads)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
