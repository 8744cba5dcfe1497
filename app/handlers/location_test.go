// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-obvious/server/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/handlers"
	scouttypes "github.com/cloudzero/pacman/app/utils/scout/types"
	"github.com/cloudzero/pacman/app/utils/scout/types/mocks"
)

func TestLocationAPI_Metadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockScout(ctrl)
	s.EXPECT().Discover(gomock.Any()).Return(scouttypes.NewCloudIdentity(scouttypes.CloudProviderAWS, "us-east-1a"))

	locator := pacman.NewLocator(s, pacman.WithHostname(func() (string, error) { return "pacman-5f7", nil }))
	a := handlers.NewLocationAPI("/loc", locator)

	req := createRequest(http.MethodGet, "/loc/metadata", nil)
	resp, err := test.InvokeService(a.Service, "/loc/metadata", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		pacman.Location{Cloud: "AWS", Zone: "us-east-1a", Host: "pacman-5f7"},
		decode[pacman.Location](t, resp),
	)
}

func TestLocationAPI_HostnameFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockScout(ctrl)

	locator := pacman.NewLocator(s, pacman.WithHostname(func() (string, error) { return "", errors.New("no uts") }))
	a := handlers.NewLocationAPI("/loc", locator)

	req := createRequest(http.MethodGet, "/loc/metadata", nil)
	resp, err := test.InvokeService(a.Service, "/loc/metadata", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestLocationAPI_MethodNotAllowed(t *testing.T) {
	a := handlers.NewLocationAPI("/loc", pacman.NewLocator(mocks.NewMockScout(gomock.NewController(t))))

	req := createRequest(http.MethodPost, "/loc/metadata", nil)
	resp, err := test.InvokeService(a.Service, "/loc/metadata", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
