// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package repo implements the storage interfaces of the types package with
// gorm.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/cloudzero/pacman/app/storage/core"
	"github.com/cloudzero/pacman/app/types"
)

type HighScoreRepoImpl struct {
	core.BaseRepoImpl
}

var _ types.HighScoreStore = (*HighScoreRepoImpl)(nil)

func NewHighScoreRepo(db *gorm.DB) *HighScoreRepoImpl {
	return &HighScoreRepoImpl{
		BaseRepoImpl: core.NewBaseRepoImpl(db, &types.HighScore{}),
	}
}

func (r *HighScoreRepoImpl) Create(ctx context.Context, it *types.HighScore) error {
	if it.Date.IsZero() {
		it.Date = core.DatabaseNow()
	}
	return core.TranslateError(r.DB(ctx).Create(it).Error)
}

func (r *HighScoreRepoImpl) Top(ctx context.Context, limit int) ([]types.HighScore, error) {
	var out []types.HighScore
	err := r.DB(ctx).
		Order("score DESC").
		Order("date ASC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, core.TranslateError(err)
	}
	return out, nil
}
