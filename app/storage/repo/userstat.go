// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudzero/pacman/app/storage/core"
	"github.com/cloudzero/pacman/app/types"
)

type UserStatRepoImpl struct {
	core.BaseRepoImpl
}

var _ types.UserStatStore = (*UserStatRepoImpl)(nil)

func NewUserStatRepo(db *gorm.DB) *UserStatRepoImpl {
	return &UserStatRepoImpl{
		BaseRepoImpl: core.NewBaseRepoImpl(db, &types.UserStat{}),
	}
}

func (r *UserStatRepoImpl) Create(ctx context.Context, it *types.UserStat) error {
	if it.Date.IsZero() {
		it.Date = core.DatabaseNow()
	}
	return core.TranslateError(r.DB(ctx).Create(it).Error)
}

// RecordStats writes every field in one statement so the counter increment
// and the field update cannot interleave with a concurrent update.
func (r *UserStatRepoImpl) RecordStats(ctx context.Context, id uuid.UUID, stats types.UserStatUpdate) (bool, error) {
	res := r.DB(ctx).
		Model(&types.UserStat{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"cloud":          stats.Cloud,
			"zone":           stats.Zone,
			"host":           stats.Host,
			"score":          stats.Score,
			"level":          stats.Level,
			"lives":          stats.Lives,
			"elapsed_time":   stats.ElapsedTime,
			"date":           core.DatabaseNow(),
			"referer":        stats.Referer,
			"user_agent":     stats.UserAgent,
			"hostname":       stats.Hostname,
			"ip_addr":        stats.IPAddr,
			"update_counter": gorm.Expr("update_counter + ?", 1),
		})
	if res.Error != nil {
		return false, core.TranslateError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserStatRepoImpl) ListScored(ctx context.Context) ([]types.UserStat, error) {
	var out []types.UserStat
	err := r.DB(ctx).
		Where("score IS NOT NULL").
		Order("created_at ASC").
		Order("rowid ASC").
		Find(&out).Error
	if err != nil {
		return nil, core.TranslateError(err)
	}
	return out, nil
}
