// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package build carries metadata stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/cloudzero/pacman/app/build.Rev=$(git rev-parse HEAD)"
package build

import (
	"fmt"

	"github.com/go-obvious/server"
)

const (
	AuthorName  = "CloudZero"
	AuthorEmail = "support@cloudzero.com"
	Copyright   = "© 2016-2025 CloudZero, Inc."
	PlatformURL = "https://www.cloudzero.com"
)

var (
	Rev  = "unknown"
	Tag  = "dev"
	Time = "unknown"
)

// GetVersion returns a human readable version string.
func GetVersion() string {
	return fmt.Sprintf("%s (%s) built %s", Tag, Rev, Time)
}

// Version returns the build metadata in the form expected by the HTTP server.
func Version() *server.ServerVersion {
	return &server.ServerVersion{
		Revision: Rev,
		Tag:      Tag,
		Time:     Time,
	}
}
