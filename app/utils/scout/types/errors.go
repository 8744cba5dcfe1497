// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "errors"

var (
	// ErrProbeUnreachable is returned when the metadata endpoint could not be
	// contacted (connection refused, DNS failure, TLS failure).
	ErrProbeUnreachable = errors.New("metadata endpoint unreachable")
	// ErrProbeTimeout is returned when the attempt exceeded its time budget.
	ErrProbeTimeout = errors.New("metadata request timed out")
	// ErrProbeBadStatus is returned when the endpoint answered with a status
	// other than 200.
	ErrProbeBadStatus = errors.New("metadata endpoint returned unexpected status")
	// ErrCredentialUnavailable is returned when a local precondition (node
	// name, service account token, CA certificate) is missing.
	ErrCredentialUnavailable = errors.New("local credential unavailable")
)

// Failure kinds reported by Classify.
const (
	KindUnreachable = "unreachable"
	KindTimeout     = "timeout"
	KindBadStatus   = "bad_status"
	KindCredential  = "credential_unavailable"
	KindOther       = "other"
)

// Classify maps a probe error onto a short kind suitable for logs and metric
// labels.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCredentialUnavailable):
		return KindCredential
	case errors.Is(err, ErrProbeTimeout):
		return KindTimeout
	case errors.Is(err, ErrProbeBadStatus):
		return KindBadStatus
	case errors.Is(err, ErrProbeUnreachable):
		return KindUnreachable
	default:
		return KindOther
	}
}
