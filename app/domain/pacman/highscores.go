// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pacman contains the game services: the leaderboard, player
// sessions and the location report shown in the game footer.
package pacman

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/types"
)

// DefaultTopScores is the size of the leaderboard.
const DefaultTopScores = 10

// HighScores manages the leaderboard.
type HighScores struct {
	store  types.HighScoreStore
	limit  int
	policy *bluemonday.Policy
}

// NewHighScores returns the leaderboard service. A non-positive limit uses
// DefaultTopScores.
func NewHighScores(store types.HighScoreStore, limit int) *HighScores {
	registerMetrics()
	if limit <= 0 {
		limit = DefaultTopScores
	}
	return &HighScores{
		store:  store,
		limit:  limit,
		policy: bluemonday.StrictPolicy(),
	}
}

// Submit records a finished game. Markup is stripped from the text fields,
// which are rendered by the game page. The date is assigned by the store.
func (h *HighScores) Submit(ctx context.Context, score *types.HighScore) error {
	if score == nil {
		return fmt.Errorf("%w: nil high score", types.ErrInvalidInput)
	}

	score.Name = h.policy.Sanitize(score.Name)
	score.Cloud = h.policy.Sanitize(score.Cloud)
	score.Zone = h.policy.Sanitize(score.Zone)
	score.Host = h.policy.Sanitize(score.Host)

	if err := h.store.Create(ctx, score); err != nil {
		highScoresSubmittedTotal.WithLabelValues(resultError).Inc()
		return fmt.Errorf("failed to save high score: %w", err)
	}

	highScoresSubmittedTotal.WithLabelValues(resultSuccess).Inc()
	log.Ctx(ctx).Debug().
		Str("id", score.ID.String()).
		Str("name", score.Name).
		Int("score", score.Score).
		Msg("high score saved")
	return nil
}

// List returns the leaderboard, best score first.
func (h *HighScores) List(ctx context.Context) ([]types.HighScore, error) {
	scores, err := h.store.Top(ctx, h.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list high scores: %w", err)
	}
	return scores, nil
}
