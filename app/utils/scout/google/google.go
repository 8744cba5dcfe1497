// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package google provides functionality for detecting placement from the
// Google Cloud metadata service.
package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	// GCP metadata service endpoints
	metadataBaseURL = "http://metadata.google.internal"
	zonePath        = "/computeMetadata/v1/instance/zone"

	flavorHeader = "Metadata-Flavor"
	flavorValue  = "Google"

	requestTimeout = metadata.DefaultTimeout
)

type Scout struct {
	client  *http.Client
	baseURL string
}

// Option configures a Scout.
type Option func(*Scout)

// WithBaseURL points the scout at an alternate metadata service.
func WithBaseURL(baseURL string) Option {
	return func(s *Scout) {
		s.baseURL = baseURL
	}
}

// WithClient replaces the HTTP client used for metadata requests.
func WithClient(client *http.Client) Option {
	return func(s *Scout) {
		s.client = client
	}
}

// NewScout creates a new GCP metadata scout
func NewScout(opts ...Option) *Scout {
	s := &Scout{
		client:  metadata.NewClient(requestTimeout),
		baseURL: metadataBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scout) Provider() types.CloudProvider {
	return types.CloudProviderGoogle
}

// Probe reads the instance zone. The value is reported as returned by the
// metadata server, e.g. "projects/123456789/zones/us-central1-a".
func (s *Scout) Probe(ctx context.Context) (types.CloudIdentity, error) {
	zone, err := metadata.Get(ctx, s.client, s.baseURL+zonePath, map[string]string{
		flavorHeader: flavorValue,
	})
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to get zone: %w", err)
	}

	return types.NewCloudIdentity(types.CloudProviderGoogle, zone), nil
}

// ZoneName extracts the bare zone from a GCP zone path.
// Zone format: "projects/{project}/zones/{zone}" or just "{zone}"
func ZoneName(zone string) string {
	if strings.Contains(zone, "/zones/") {
		parts := strings.Split(zone, "/zones/")
		if len(parts) == 2 {
			return parts[1]
		}
	}
	return zone
}

// RegionFromZone extracts the region from a GCP zone string
// Zone examples: "us-central1-a", "europe-west1-b"
// Region examples: "us-central1", "europe-west1"
func RegionFromZone(zone string) string {
	zone = ZoneName(zone)

	// Extract region from zone by removing the last part after the last hyphen
	zoneParts := strings.Split(zone, "-")
	if len(zoneParts) > 1 {
		return strings.Join(zoneParts[:len(zoneParts)-1], "-")
	}

	// If we can't parse it properly, return the zone as-is
	return zone
}
