// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scout discovers which cloud or orchestration environment the
// process runs in, and where it is placed.
//
// Discovery walks a fixed chain of metadata probes (Kubernetes, AWS, Azure,
// GCP, OpenStack) one at a time and reports the first that answers. It never
// fails: an unidentifiable environment yields the unknown sentinel.
package scout

import (
	"time"

	"github.com/cloudzero/pacman/app/utils/scout/auto"
	"github.com/cloudzero/pacman/app/utils/scout/aws"
	"github.com/cloudzero/pacman/app/utils/scout/azure"
	"github.com/cloudzero/pacman/app/utils/scout/google"
	"github.com/cloudzero/pacman/app/utils/scout/kubernetes"
	"github.com/cloudzero/pacman/app/utils/scout/openstack"
	"github.com/cloudzero/pacman/app/utils/scout/types"
)

type options struct {
	probeTimeout time.Duration
	kubernetes   []kubernetes.Option
	aws          []aws.Option
	azure        []azure.Option
	google       []google.Option
	openstack    []openstack.Option
}

// Option customizes the default discovery chain.
type Option func(*options)

// WithProbeTimeout bounds each probe attempt. Defaults to 10s.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *options) { o.probeTimeout = d }
}

func WithKubernetesOptions(opts ...kubernetes.Option) Option {
	return func(o *options) { o.kubernetes = append(o.kubernetes, opts...) }
}

func WithAWSOptions(opts ...aws.Option) Option {
	return func(o *options) { o.aws = append(o.aws, opts...) }
}

func WithAzureOptions(opts ...azure.Option) Option {
	return func(o *options) { o.azure = append(o.azure, opts...) }
}

func WithGoogleOptions(opts ...google.Option) Option {
	return func(o *options) { o.google = append(o.google, opts...) }
}

func WithOpenStackOptions(opts ...openstack.Option) Option {
	return func(o *options) { o.openstack = append(o.openstack, opts...) }
}

// NewScout creates the default discovery chain.
func NewScout(opts ...Option) types.Scout {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var autoOpts []auto.Option
	if o.probeTimeout > 0 {
		autoOpts = append(autoOpts, auto.WithProbeTimeout(o.probeTimeout))
		o.kubernetes = append([]kubernetes.Option{kubernetes.WithTimeout(o.probeTimeout)}, o.kubernetes...)
	}

	return auto.NewScout([]types.Probe{
		kubernetes.NewScout(o.kubernetes...),
		aws.NewScout(o.aws...),
		azure.NewScout(o.azure...),
		google.NewScout(o.google...),
		openstack.NewScout(o.openstack...),
	}, autoOpts...)
}
