// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package types defines core types and interfaces for cloud environment
// discovery.
package types

import "strings"

// CloudProvider identifies the cloud or orchestration substrate a process runs
// on. The values are the tags reported to API clients.
type CloudProvider string

const (
	// CloudProviderKubernetes represents a Kubernetes node
	CloudProviderKubernetes CloudProvider = "Kubernetes"
	// CloudProviderAWS represents Amazon Web Services
	CloudProviderAWS CloudProvider = "AWS"
	// CloudProviderAzure represents Microsoft Azure
	CloudProviderAzure CloudProvider = "Azure"
	// CloudProviderGoogle represents Google Cloud Platform
	CloudProviderGoogle CloudProvider = "GCP"
	// CloudProviderOpenStack represents an OpenStack instance
	CloudProviderOpenStack CloudProvider = "OpenStack"
	// CloudProviderUnknown represents an undetected or unsupported provider
	CloudProviderUnknown CloudProvider = "unknown"
)

// ZoneUnknown is reported when no zone could be resolved.
const ZoneUnknown = "unknown"

// CloudIdentity is the result of a discovery: which provider was detected and
// where the instance is placed.
//
// Zone is opaque and provider specific (an availability zone, a region, or a
// node topology label). It never carries surrounding whitespace.
type CloudIdentity struct {
	Cloud CloudProvider `json:"cloud" yaml:"cloud"`
	Zone  string        `json:"zone" yaml:"zone"`
}

// NewCloudIdentity builds a CloudIdentity, trimming the zone as received from
// the metadata service.
func NewCloudIdentity(cloud CloudProvider, zone string) CloudIdentity {
	return CloudIdentity{
		Cloud: cloud,
		Zone:  strings.TrimSpace(zone),
	}
}

// UnknownIdentity is the sentinel returned when no provider could be
// identified.
func UnknownIdentity() CloudIdentity {
	return CloudIdentity{
		Cloud: CloudProviderUnknown,
		Zone:  ZoneUnknown,
	}
}

// IsUnknown reports whether the identity is the Unknown sentinel.
func (c CloudIdentity) IsUnknown() bool {
	return c.Cloud == CloudProviderUnknown
}
