// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"

	"gorm.io/gorm"
)

// RawBaseRepoImpl gives repositories a context aware handle on the database.
// Operations run through DB(ctx) join the transaction carried by ctx, if any.
//
// Usage:
//
//	type ScoreRepo struct{ core.BaseRepoImpl }
//
//	func (r *ScoreRepo) Top(ctx context.Context, n int) ([]HighScore, error) {
//		var out []HighScore
//		err := r.DB(ctx).Order("score desc").Limit(n).Find(&out).Error
//		return out, core.TranslateError(err)
//	}
type RawBaseRepoImpl struct {
	db *gorm.DB
}

func NewRawBaseRepoImpl(db *gorm.DB) RawBaseRepoImpl {
	return RawBaseRepoImpl{
		db: db,
	}
}

// DB returns the transaction in ctx, or the base database, bound to ctx.
func (b *RawBaseRepoImpl) DB(ctx context.Context) *gorm.DB {
	if tx, found := FromContext(ctx); found {
		return tx.WithContext(ctx)
	}

	return b.db.WithContext(ctx)
}

// Tx executes block within a database transaction. The transaction commits
// when block returns nil and rolls back otherwise. Nested calls create
// savepoints.
func (b *RawBaseRepoImpl) Tx(ctx context.Context, block func(ctxTx context.Context) error) error {
	return b.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return block(NewContext(ctx, tx))
	})
}

// BaseRepoImpl extends RawBaseRepoImpl with operations on a single model.
type BaseRepoImpl struct {
	RawBaseRepoImpl
	model any
}

// NewBaseRepoImpl creates a BaseRepoImpl; model is a pointer to a zero value
// of the table's struct, e.g. &types.HighScore{}.
func NewBaseRepoImpl(db *gorm.DB, model any) BaseRepoImpl {
	return BaseRepoImpl{
		RawBaseRepoImpl: NewRawBaseRepoImpl(db),
		model:           model,
	}
}

// Count returns the total number of records in the repository's table.
func (b *BaseRepoImpl) Count(ctx context.Context) (int, error) {
	var count int64
	err := b.DB(ctx).Model(b.model).Count(&count).Error
	return int(count), TranslateError(err)
}

// DeleteAll removes all records from the repository's table.
func (b *BaseRepoImpl) DeleteAll(ctx context.Context) error {
	return TranslateError(b.DB(ctx).Where("1 = 1").Delete(b.model).Error)
}

// key is an unexported type for context keys defined in this package.
type key int

var dbKey key

// NewContext returns a context carrying the transaction db.
func NewContext(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey, db)
}

// FromContext returns the transaction carried by ctx, if any.
func FromContext(ctx context.Context) (*gorm.DB, bool) {
	db, ok := ctx.Value(dbKey).(*gorm.DB)
	return db, ok
}
