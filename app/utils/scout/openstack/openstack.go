// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package openstack detects OpenStack placement from the Nova metadata service.
package openstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	metadataBaseURL = "http://169.254.169.254"
	metaDataPath    = "/openstack/latest/meta_data.json"

	// zoneQuery selects the availability zone out of meta_data.json
	zoneQuery = ".availability_zone"

	requestTimeout = metadata.DefaultTimeout
)

// zoneCode is compiled once; the query is constant so a parse failure is a
// programming error.
var zoneCode = mustCompile(zoneQuery)

func mustCompile(q string) *gojq.Code {
	query, err := gojq.Parse(q)
	if err != nil {
		panic(err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		panic(err)
	}
	return code
}

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

// NewScout creates a new OpenStack metadata scout
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
	return types.CloudProviderOpenStack
}

// Probe fetches meta_data.json and reports its availability_zone. When the
// document cannot be decoded or carries no zone, the trimmed body is reported
// unchanged.
func (s *Scout) Probe(ctx context.Context) (types.CloudIdentity, error) {
	body, err := metadata.Get(ctx, s.client, s.baseURL+metaDataPath, nil)
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to get OpenStack metadata: %w", err)
	}

	return types.NewCloudIdentity(types.CloudProviderOpenStack, AvailabilityZone(ctx, body)), nil
}

// AvailabilityZone extracts the availability zone from a meta_data.json
// document, falling back to the document itself.
func AvailabilityZone(ctx context.Context, document string) string {
	var doc any
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return document
	}

	iter := zoneCode.RunWithContext(ctx, doc)
	v, ok := iter.Next()
	if !ok {
		return document
	}

	zone, ok := v.(string)
	if !ok || strings.TrimSpace(zone) == "" {
		return document
	}
	return zone
}
