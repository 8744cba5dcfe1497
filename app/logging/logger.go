// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the zerolog loggers used by the pacman binaries.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type LoggerOpt func(*loggerOptions) error

type loggerOptions struct {
	level   zerolog.Level
	sinks   []io.Writer
	omitted []string
	attrs   []func(zerolog.Context) zerolog.Context
}

// WithLevel sets the minimum level by name ("debug", "info", ...). An empty
// name keeps the default of info.
func WithLevel(level string) LoggerOpt {
	return func(o *loggerOptions) error {
		if level == "" {
			return nil
		}
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", level)
		}
		o.level = lvl
		return nil
	}
}

// WithSink adds a writer. When no sink is given, logs go to stdout.
func WithSink(w io.Writer) LoggerOpt {
	return func(o *loggerOptions) error {
		if w == nil {
			return errors.New("nil log sink")
		}
		o.sinks = append(o.sinks, w)
		return nil
	}
}

// WithOmittedFields drops the named keys from every log line.
func WithOmittedFields(fields ...string) LoggerOpt {
	return func(o *loggerOptions) error {
		o.omitted = append(o.omitted, fields...)
		return nil
	}
}

// WithVersion stamps every line with the application version.
func WithVersion(version string) LoggerOpt {
	return WithAttrs(func(c zerolog.Context) zerolog.Context {
		return c.Str("version", version)
	})
}

// WithAttrs adds fields to the logger context.
func WithAttrs(fn func(zerolog.Context) zerolog.Context) LoggerOpt {
	return func(o *loggerOptions) error {
		o.attrs = append(o.attrs, fn)
		return nil
	}
}

// NewLogger creates a structured JSON logger.
func NewLogger(opts ...LoggerOpt) (*zerolog.Logger, error) {
	o := &loggerOptions{level: zerolog.InfoLevel}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if len(o.sinks) == 0 {
		o.sinks = append(o.sinks, os.Stdout)
	}

	var w io.Writer = o.sinks[0]
	if len(o.sinks) > 1 {
		w = zerolog.MultiLevelWriter(o.sinks...)
	}
	if len(o.omitted) > 0 {
		w = NewFieldFilterWriter(w, o.omitted)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	if o.level < zerolog.GlobalLevel() {
		// the global floor would drop trace events otherwise
		zerolog.SetGlobalLevel(o.level)
	}

	ctx := zerolog.New(w).Level(o.level).With().Timestamp()
	for _, fn := range o.attrs {
		ctx = fn(ctx)
	}

	logger := ctx.Logger()
	return &logger, nil
}
