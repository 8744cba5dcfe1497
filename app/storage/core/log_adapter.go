// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

// DefaultSlowThreshold is the query duration above which queries are logged
// as warnings.
const DefaultSlowThreshold = 200 * time.Millisecond

// ZeroLogAdapter implements gorm's logger.Interface on top of the zerolog
// logger carried by the query context. Each query produces exactly one entry
// with the statement in the "sql" field.
type ZeroLogAdapter struct {
	// SlowThreshold of zero disables slow query warnings.
	SlowThreshold time.Duration
}

var _ logger.Interface = ZeroLogAdapter{}

// LogMode is a no-op; levels are controlled by the zerolog logger.
func (z ZeroLogAdapter) LogMode(logger.LogLevel) logger.Interface {
	return z
}

func (z ZeroLogAdapter) Info(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Info().Msg(fmt.Sprintf(msg, args...))
}

func (z ZeroLogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Warn().Msg(fmt.Sprintf(msg, args...))
}

func (z ZeroLogAdapter) Error(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Error().Msg(fmt.Sprintf(msg, args...))
}

func (z ZeroLogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	l := zerolog.Ctx(ctx)

	var event *zerolog.Event
	switch {
	case err != nil:
		event = l.Error().Err(err)
	case z.SlowThreshold > 0 && elapsed > z.SlowThreshold:
		event = l.Warn().Dur("threshold", z.SlowThreshold)
	default:
		event = l.Debug()
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", elapsed).
		Msg("database query")
}
