// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Mock is an in-memory Mailer for tests and credential-less local runs.
// It records every message and can be scripted to fail.
type Mock struct {
	mu   sync.Mutex
	sent []Message

	// Err, when set, is returned by every Send
	Err error
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	m.sent = append(m.sent, msg)
	slog.Info("mock mailer accepted message", "to", msg.To, "subject", msg.Subject)
	return &Receipt{ID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// Sent returns a copy of every accepted message in order.
func (m *Mock) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
