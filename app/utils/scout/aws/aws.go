// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package aws provides AWS placement detection using the EC2 instance metadata
// service (IMDS).
package aws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	// EC2 metadata service endpoints
	metadataBaseURL = "http://169.254.169.254"
	zonePath        = "/latest/meta-data/placement/availability-zone"

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

// NewScout creates a new AWS metadata scout
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
	return types.CloudProviderAWS
}

// Probe reads the instance availability zone with a plain IMDS GET.
func (s *Scout) Probe(ctx context.Context) (types.CloudIdentity, error) {
	zone, err := metadata.Get(ctx, s.client, s.baseURL+zonePath, nil)
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to get availability zone: %w", err)
	}

	return types.NewCloudIdentity(types.CloudProviderAWS, zone), nil
}
