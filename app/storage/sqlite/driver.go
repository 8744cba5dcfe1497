// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sqlite opens the service database on SQLite.
//
// Usage:
//
//	// persistent
//	db, err := sqlite.NewSQLiteDriver("/var/lib/pacman/pacman.sqlite")
//
//	// tests
//	db, err := sqlite.NewSQLiteDriver(sqlite.InMemoryDSN)
package sqlite

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cloudzero/pacman/app/storage/core"
	"github.com/cloudzero/pacman/app/types"
)

const (
	// InMemoryDSN is a private in-memory database; each connection sees its
	// own copy.
	InMemoryDSN = ":memory:"

	// MemorySharedCached is an in-memory database shared by all connections of
	// the process.
	MemorySharedCached = "file:memory?mode=memory&cache=shared"
)

// NewSQLiteDriver opens dsn with the core driver settings.
func NewSQLiteDriver(dsn string) (*gorm.DB, error) {
	db, err := core.NewDriver(sqlite.Open(dsn))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", dsn)
	}

	if dsn == InMemoryDSN {
		// a second connection would see an empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, core.TranslateError(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Open opens dsn and migrates the service tables.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := NewSQLiteDriver(dsn)
	if err != nil {
		return nil, err
	}

	if err := core.Migrate(ctx, db, &types.HighScore{}, &types.UserStat{}); err != nil {
		_ = core.Close(db)
		return nil, err
	}

	return db, nil
}
