// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "context"

//go:generate mockgen -destination=mocks/scout_mock.go -package=mocks . Probe,Scout

// Probe is a single provider-specific attempt to reach a metadata endpoint and
// extract a zone.
type Probe interface {
	// Provider returns the tag reported when this probe succeeds.
	Provider() CloudProvider

	// Probe performs exactly one identification attempt.
	//
	// Returns:
	//   - CloudIdentity: the identity with a trimmed zone on success
	//   - error: wraps one of ErrProbeUnreachable, ErrProbeTimeout,
	//     ErrProbeBadStatus or ErrCredentialUnavailable on failure
	Probe(ctx context.Context) (CloudIdentity, error)
}

// Scout discovers the cloud identity of the running host.
type Scout interface {
	// Discover never fails. When no provider can be identified it returns
	// UnknownIdentity().
	Discover(ctx context.Context) CloudIdentity
}
