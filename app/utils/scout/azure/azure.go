// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package azure provides Azure placement detection using the Azure Instance
// Metadata Service (IMDS).
package azure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	// azureMetadataURL is the base URL for the Azure Instance Metadata Service (IMDS)
	// https://docs.microsoft.com/en-us/azure/virtual-machines/windows/instance-metadata-service
	azureMetadataURL = "http://169.254.169.254"
	locationPath     = "/metadata/instance/compute/location?api-version=2017-04-02&format=text"

	// metadataHeader is the required header for Azure IMDS requests
	metadataHeader = "Metadata"

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

// NewScout creates a new Azure metadata scout
func NewScout(opts ...Option) *Scout {
	s := &Scout{
		client:  metadata.NewClient(requestTimeout),
		baseURL: azureMetadataURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scout) Provider() types.CloudProvider {
	return types.CloudProviderAzure
}

// Probe reads the compute location as plain text.
func (s *Scout) Probe(ctx context.Context) (types.CloudIdentity, error) {
	location, err := metadata.Get(ctx, s.client, s.baseURL+locationPath, map[string]string{
		metadataHeader: "true",
	})
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to get Azure location: %w", err)
	}

	return types.NewCloudIdentity(types.CloudProviderAzure, location), nil
}
