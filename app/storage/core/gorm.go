// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core provides the gorm plumbing shared by every storage backend:
// driver construction, context-carried transactions, error translation and a
// zerolog query logger.
package core

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// NewDriver opens a gorm database with the service conventions applied:
// singular table names, UTC millisecond timestamps, zerolog query logging and
// translated driver errors.
//
// Usage:
//
//	db, err := NewDriver(sqlite.Open("pacman.sqlite"))
func NewDriver(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		NowFunc:        DatabaseNow, // For timestamps, use UTC, truncated to milliseconds
		Logger:         ZeroLogAdapter{SlowThreshold: DefaultSlowThreshold},
		TranslateError: true,
	})
}

// DatabaseNow returns the current time in UTC truncated to milliseconds.
func DatabaseNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Migrate creates or updates the tables of the given models.
func Migrate(ctx context.Context, db *gorm.DB, models ...any) error {
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}
	return nil
}

// Ping checks that the underlying connection is usable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return TranslateError(err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return TranslateError(err)
	}
	return sqlDB.Close()
}
