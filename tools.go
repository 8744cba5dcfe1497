// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build tools

// tools.go pins the code generators used by go:generate directives so that
// `go install go.uber.org/mock/mockgen` resolves to the version in go.mod.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
