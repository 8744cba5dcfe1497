// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pacman

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/utils/scout"
	"github.com/cloudzero/pacman/app/utils/scout/host"
	scouttypes "github.com/cloudzero/pacman/app/utils/scout/types"
)

// Location is where the service instance answering a request runs.
type Location struct {
	Cloud string `json:"cloud"`
	Zone  string `json:"zone"`
	Host  string `json:"host"`
}

type LocatorOption func(*Locator)

// WithStaticIdentity reports cloud and zone instead of discovering them. A
// blank cloud keeps discovery on.
func WithStaticIdentity(cloud, zone string) LocatorOption {
	return func(l *Locator) {
		l.cloud = cloud
		l.zone = zone
	}
}

// WithHostname replaces the local hostname lookup.
func WithHostname(fn func() (string, error)) LocatorOption {
	return func(l *Locator) {
		if fn != nil {
			l.hostname = fn
		}
	}
}

// Locator reports the Location of this instance. Every call probes the
// network again under the caller's context.
type Locator struct {
	scout    scouttypes.Scout
	cloud    string
	zone     string
	hostname func() (string, error)
}

// NewLocator returns a Locator discovering through s. A nil s uses the
// default probe chain.
func NewLocator(s scouttypes.Scout, opts ...LocatorOption) *Locator {
	l := &Locator{
		scout:    s,
		hostname: host.Hostname,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.scout == nil {
		l.scout = scout.NewScout()
	}
	return l
}

// Locate resolves the cloud identity and the hostname. Discovery never
// fails; a hostname failure is returned.
func (l *Locator) Locate(ctx context.Context) (Location, error) {
	hostname, err := l.hostname()
	if err != nil {
		return Location{}, err
	}

	id := scout.DetectIdentity(ctx, l.scout, l.cloud, l.zone)

	log.Ctx(ctx).Info().
		Str("cloud", string(id.Cloud)).
		Str("zone", id.Zone).
		Str("host", hostname).
		Msg("location resolved")

	return Location{
		Cloud: string(id.Cloud),
		Zone:  id.Zone,
		Host:  hostname,
	}, nil
}
