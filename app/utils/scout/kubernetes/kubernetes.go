// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package kubernetes detects placement by reading the Node object the current
// pod is scheduled on from the cluster API server.
//
// The probe requires three local preconditions: the node name injected through
// the downward API (MY_NODE_NAME by default), and the service account token
// and CA certificate mounted into the pod. Missing any of them fails the probe
// with types.ErrCredentialUnavailable before any network call is made.
package kubernetes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	k8sclient "k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"

	"github.com/cloudzero/pacman/app/utils/scout/metadata"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	// DefaultNodeNameEnv is the environment variable carrying the node name.
	DefaultNodeNameEnv = "MY_NODE_NAME"
	// DefaultAPIServer is the in-cluster API server address.
	DefaultAPIServer = "https://kubernetes.default.svc"

	DefaultTokenPath  = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	DefaultCACertPath = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"
)

type Scout struct {
	apiServer   string
	tokenPath   string
	caCertPath  string
	nodeNameEnv string
	timeout     time.Duration
}

// Option configures a Scout.
type Option func(*Scout)

// WithAPIServer overrides the API server URL.
func WithAPIServer(url string) Option {
	return func(s *Scout) {
		if url != "" {
			s.apiServer = url
		}
	}
}

// WithTokenPath overrides the service account token location.
func WithTokenPath(path string) Option {
	return func(s *Scout) {
		if path != "" {
			s.tokenPath = path
		}
	}
}

// WithCACertPath overrides the cluster CA certificate location.
func WithCACertPath(path string) Option {
	return func(s *Scout) {
		if path != "" {
			s.caCertPath = path
		}
	}
}

// WithNodeNameEnv overrides the environment variable holding the node name.
func WithNodeNameEnv(name string) Option {
	return func(s *Scout) {
		if name != "" {
			s.nodeNameEnv = name
		}
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Scout) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewScout creates a new Kubernetes node scout
func NewScout(opts ...Option) *Scout {
	s := &Scout{
		apiServer:   DefaultAPIServer,
		tokenPath:   DefaultTokenPath,
		caCertPath:  DefaultCACertPath,
		nodeNameEnv: DefaultNodeNameEnv,
		timeout:     metadata.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scout) Provider() types.CloudProvider {
	return types.CloudProviderKubernetes
}

// Probe fetches the node and reports its topology zone label.
func (s *Scout) Probe(ctx context.Context) (types.CloudIdentity, error) {
	nodeName := os.Getenv(s.nodeNameEnv)
	if nodeName == "" {
		return types.CloudIdentity{}, fmt.Errorf("%w: %s is not set", types.ErrCredentialUnavailable, s.nodeNameEnv)
	}

	cfg, err := s.restConfig()
	if err != nil {
		return types.CloudIdentity{}, err
	}

	client, err := k8sclient.NewForConfig(cfg)
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to create a k8s client: %w", err)
	}

	var node corev1.Node
	err = client.CoreV1().RESTClient().
		Get().
		Resource("nodes").
		Name(nodeName).
		MaxRetries(0).
		Do(ctx).
		Into(&node)
	if err != nil {
		return types.CloudIdentity{}, fmt.Errorf("failed to get the node: %w", classify(ctx, err))
	}

	return types.NewCloudIdentity(types.CloudProviderKubernetes, NodeZone(&node)), nil
}

func (s *Scout) restConfig() (*rest.Config, error) {
	token, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read service account token: %w", types.ErrCredentialUnavailable, err)
	}

	ca, err := os.ReadFile(s.caCertPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CA certificate: %w", types.ErrCredentialUnavailable, err)
	}

	return &rest.Config{
		Host:        s.apiServer,
		BearerToken: strings.TrimSpace(string(token)),
		TLSClientConfig: rest.TLSClientConfig{
			CAData: ca,
		},
		Timeout: s.timeout,
	}, nil
}

func classify(ctx context.Context, err error) error {
	var status apierrors.APIStatus
	switch {
	case metadata.IsTimeout(ctx, err) || apierrors.IsTimeout(err) || apierrors.IsServerTimeout(err):
		return fmt.Errorf("%w: %w", types.ErrProbeTimeout, err)
	case errors.As(err, &status):
		return fmt.Errorf("%w: %d: %w", types.ErrProbeBadStatus, status.Status().Code, err)
	default:
		return fmt.Errorf("%w: %w", types.ErrProbeUnreachable, err)
	}
}

// NodeZone returns the node's zone from the well-known topology labels,
// preferring the zone over the region.
func NodeZone(node *corev1.Node) string {
	for _, label := range []string{
		corev1.LabelTopologyZone,
		corev1.LabelFailureDomainBetaZone,
		corev1.LabelTopologyRegion,
		corev1.LabelFailureDomainBetaRegion,
	} {
		if v := strings.TrimSpace(node.Labels[label]); v != "" {
			return v
		}
	}
	return types.ZoneUnknown
}
