// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostname(t *testing.T) {
	expected, err := os.Hostname()
	require.NoError(t, err)

	got, err := Hostname()
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestHostname_Error(t *testing.T) {
	orig := hostname
	t.Cleanup(func() { hostname = orig })

	boom := errors.New("boom")
	hostname = func() (string, error) { return "", boom }

	_, err := Hostname()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
