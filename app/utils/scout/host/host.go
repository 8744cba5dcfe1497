// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package host reports the identity of the local machine.
package host

import (
	"os"

	"github.com/pkg/errors"
)

// hostname is swapped in tests.
var hostname = os.Hostname

// Hostname returns the local machine's hostname. A failure of the underlying
// platform call is returned to the caller.
func Hostname() (string, error) {
	name, err := hostname()
	if err != nil {
		return "", errors.Wrap(err, "failed to read hostname")
	}
	return name, nil
}
