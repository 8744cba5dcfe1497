// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pacman

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/types"
)

// UserStats tracks player sessions.
type UserStats struct {
	store types.UserStatStore
}

func NewUserStats(store types.UserStatStore) *UserStats {
	registerMetrics()
	return &UserStats{store: store}
}

// NewID opens an empty session and returns its id.
func (u *UserStats) NewID(ctx context.Context) (uuid.UUID, error) {
	stat := &types.UserStat{}
	if err := u.store.Create(ctx, stat); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user session: %w", err)
	}

	userSessionsCreatedTotal.Inc()
	log.Ctx(ctx).Debug().Str("userId", stat.ID.String()).Msg("user session created")
	return stat.ID, nil
}

// Record overwrites the stats of session userID. It reports false when userID
// is malformed or names no session.
func (u *UserStats) Record(ctx context.Context, userID string, update types.UserStatUpdate) (bool, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		log.Ctx(ctx).Debug().Str("userId", userID).Err(err).Msg("malformed user id")
		userStatsUpdatesTotal.WithLabelValues(resultError).Inc()
		return false, nil
	}

	matched, err := u.store.RecordStats(ctx, id, update)
	if err != nil {
		userStatsUpdatesTotal.WithLabelValues(resultError).Inc()
		return false, fmt.Errorf("failed to update user stats: %w", err)
	}

	if !matched {
		log.Ctx(ctx).Debug().Str("userId", userID).Msg("no matching user session")
		userStatsUpdatesTotal.WithLabelValues(resultError).Inc()
		return false, nil
	}

	userStatsUpdatesTotal.WithLabelValues(resultSuccess).Inc()
	return true, nil
}

// List returns every session that has recorded a score, oldest first.
func (u *UserStats) List(ctx context.Context) ([]types.UserStat, error) {
	stats, err := u.store.ListScored(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}
	return stats, nil
}
