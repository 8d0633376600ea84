// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/southwest-video/auth"
	"github.com/danielhkuo/southwest-video/cliparse"
	"github.com/danielhkuo/southwest-video/contact"
	"github.com/danielhkuo/southwest-video/content"
	"github.com/danielhkuo/southwest-video/db"
	"github.com/danielhkuo/southwest-video/mailer"
	"github.com/danielhkuo/southwest-video/middleware"
	"github.com/danielhkuo/southwest-video/ratelimit"
	"github.com/danielhkuo/southwest-video/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKey {
		fmt.Println(auth.GenerateAdminKey(auth.LeadArchiveKeyID, cfg.AdminKeySalt))
		return
	}

	// Lead archive is optional; without a DATABASE_URL accepted leads are
	// mailed but not stored
	var leadStore db.LeadStore
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		if err := conn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		if err := db.CreateSchema(conn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Lead archive ready", "type", cfg.DatabaseType)

		leadStore = db.NewSQLLeadStore(conn)
	} else {
		slog.Warn("No DATABASE_URL set; lead archive disabled")
	}

	// Content store is optional as well
	var contentStore *content.Store
	if cfg.ContentDir != "" {
		contentStore, err = content.Load(cfg.ContentDir)
		if err != nil {
			slog.Error("content loading failed", "dir", cfg.ContentDir, "error", err)
			os.Exit(1)
		}
		slog.Info("Content loaded",
			"projects", len(contentStore.Projects()),
			"testimonials", len(contentStore.Testimonials()),
		)
	}

	// Outbound mail: real transport with credentials, mock without
	var mail mailer.Mailer
	if cfg.ResendAPIKey != "" {
		mail = mailer.NewResendClient(cfg.ResendAPIKey)
	} else {
		slog.Warn("No RESEND_API_KEY set; using mock mailer")
		mail = mailer.NewMock()
	}

	pipeline := contact.New(contact.Config{
		EmailFrom:        cfg.EmailFrom,
		EmailTo:          cfg.EmailTo,
		RateLimit:        cfg.RateLimit,
		RateLimitUnknown: cfg.RateLimitUnknown,
		RateLimitWindow:  cfg.RateLimitWindow,
		FormTokenSalt:    cfg.FormTokenSalt,
		IPHashSalt:       cfg.IPHashSalt,
	}, ratelimit.New(nil, nil), mail, leadStore, nil)

	// Create router
	mux := router.NewRouter(pipeline, contentStore, leadStore, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
