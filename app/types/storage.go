// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package types defines the models and storage contracts of the pacman
// service. Implementations live under app/storage; the domain layer only
// depends on these interfaces.
package types

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks . HighScoreStore,UserStatStore

// StorageCommon defines common methods that all repository implementations
// provide by virtue of using core.BaseRepoImpl.
type StorageCommon interface {
	// Tx runs block within a transaction. Operations using ctxTx take part in
	// it; returning an error rolls it back.
	Tx(ctx context.Context, block func(ctxTx context.Context) error) error
	// Count returns the number of records.
	Count(ctx context.Context) (int, error)
	// DeleteAll removes all records. Intended for tests.
	DeleteAll(ctx context.Context) error
}

type Creator[Model any] interface {
	Create(ctx context.Context, it *Model) error
}

// HighScoreStore persists leaderboard entries.
type HighScoreStore interface {
	StorageCommon
	Creator[HighScore]

	// Top returns at most limit entries, highest score first.
	Top(ctx context.Context, limit int) ([]HighScore, error)
}

// UserStatStore persists player sessions.
type UserStatStore interface {
	StorageCommon
	Creator[UserStat]

	// RecordStats overwrites the stats of session id and increments its update
	// counter. It reports whether the session exists.
	RecordStats(ctx context.Context, id uuid.UUID, stats UserStatUpdate) (bool, error)

	// ListScored returns every session that has recorded a score, oldest
	// first.
	ListScored(ctx context.Context) ([]UserStat, error)
}
