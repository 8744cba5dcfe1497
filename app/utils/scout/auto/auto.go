// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package auto provides the sequential discovery chain.
//
// The auto package orchestrates multiple provider Probes, trying each in
// order until one identifies the environment.
package auto

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

// Scout implements the types.Scout interface over an ordered list of probes.
type Scout struct {
	probes  []types.Probe
	timeout time.Duration
}

// Option configures a Scout.
type Option func(*Scout)

// WithProbeTimeout bounds every individual probe attempt.
func WithProbeTimeout(d time.Duration) Option {
	return func(s *Scout) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewScout creates a Scout that tries the provided probes in order.
func NewScout(probes []types.Probe, opts ...Option) *Scout {
	registerMetrics()

	s := &Scout{
		probes:  probes,
		timeout: metadata.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover tries each probe strictly one after the other and returns the
// identity of the first that succeeds. Probe failures are logged and
// swallowed. When every probe fails, or ctx is done before one succeeds, the
// Unknown sentinel is returned.
func (s *Scout) Discover(ctx context.Context) types.CloudIdentity {
	logger := log.Ctx(ctx)

	for _, p := range s.probes {
		if ctx.Err() != nil {
			logger.Debug().Err(ctx.Err()).Msg("discovery abandoned")
			break
		}

		provider := p.Provider()

		start := time.Now()
		probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
		id, err := p.Probe(probeCtx)
		cancel()
		probeDuration.WithLabelValues(string(provider)).Observe(time.Since(start).Seconds())

		if err != nil {
			kind := types.Classify(err)
			probeAttemptsTotal.WithLabelValues(string(provider), kind).Inc()
			logger.Debug().
				Str("provider", string(provider)).
				Str("kind", kind).
				Err(err).
				Msg("probe failed")
			continue
		}

		probeAttemptsTotal.WithLabelValues(string(provider), resultSuccess).Inc()

		// the probe's own tag is authoritative
		identity := types.NewCloudIdentity(provider, id.Zone)
		logger.Info().
			Str("provider", string(provider)).
			Str("zone", identity.Zone).
			Msg("environment identified")
		return identity
	}

	return types.UnknownIdentity()
}
