// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles lead-archive persistence.

# Opening a Database

Open honors the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (lib/pq). Both drivers accept the $N placeholder syntax used
throughout this package.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - lead: Archived accepted submissions. The IP hash is the salted one-way
    hash produced by auth.HashIP, never the raw address.

# Lead Stores

LeadStore is the persistence seam for the submission pipeline:

	store := db.NewSQLLeadStore(conn)
	err := store.Insert(ctx, lead)
	leads, err := store.List(ctx, 50, 0)

MemoryLeadStore backs tests and database-less deployments. The pipeline
treats the store as optional: with no DATABASE_URL configured, accepted
leads are mailed but not archived.
*/
package db
