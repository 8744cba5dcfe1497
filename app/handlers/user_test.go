// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-obvious/server/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/handlers"
	"github.com/cloudzero/pacman/app/storage/core"
	"github.com/cloudzero/pacman/app/storage/repo"
	"github.com/cloudzero/pacman/app/storage/sqlite"
	"github.com/cloudzero/pacman/app/types"
	"github.com/cloudzero/pacman/app/types/mocks"
)

func statsForm(userID string) url.Values {
	return url.Values{
		"userId":      {userID},
		"cloud":       {"OpenStack"},
		"zone":        {"nova"},
		"host":        {"pacman-4"},
		"score":       {"2500"},
		"level":       {"3"},
		"lives":       {"1"},
		"elapsedTime": {"95"},
	}
}

// TestUserAPI_Session walks a session through a real database.
func TestUserAPI_Session(t *testing.T) {
	db, err := sqlite.Open(t.Context(), sqlite.InMemoryDSN)
	require.NoError(t, err)
	defer core.Close(db)

	a := handlers.NewUserAPI("/user", pacman.NewUserStats(repo.NewUserStatRepo(db)))

	// new session
	req := createRequest(http.MethodGet, "/user/id", nil)
	resp, err := test.InvokeService(a.Service, "/user/id", *req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	userID := decode[string](t, resp)
	_, err = uuid.Parse(userID)
	require.NoError(t, err)

	// unscored sessions are not listed
	req = createRequest(http.MethodGet, "/user/stats", nil)
	resp, err = test.InvokeService(a.Service, "/user/stats", *req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, decode[[]handlers.UserStatEntry](t, resp))

	// two updates
	for i := 0; i < 2; i++ {
		req = createFormRequest("/user/stats", statsForm(userID))
		resp, err = test.InvokeService(a.Service, "/user/stats", *req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, handlers.StatsResponse{RS: "success"}, decode[handlers.StatsResponse](t, resp))
	}

	req = createRequest(http.MethodGet, "/user/stats", nil)
	resp, err = test.InvokeService(a.Service, "/user/stats", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, []handlers.UserStatEntry{{
		Cloud:    "OpenStack",
		Zone:     "nova",
		Host:     "pacman-4",
		Score:    2500,
		Level:    3,
		Lives:    1,
		ET:       95,
		TxnCount: 2,
	}}, decode[[]handlers.UserStatEntry](t, resp))
}

func TestUserAPI_PostStatsRejected(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		setup      func(store *mocks.MockUserStatStore)
		wantStatus int
	}{
		{
			name: "unknown session",
			form: statsForm(uuid.NewString()),
			setup: func(store *mocks.MockUserStatStore) {
				store.EXPECT().RecordStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed session id",
			form:       statsForm("5f1d7c"),
			setup:      func(*mocks.MockUserStatStore) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "malformed lives",
			form: func() url.Values {
				f := statsForm(uuid.NewString())
				f.Set("lives", "")
				return f
			}(),
			setup:      func(*mocks.MockUserStatStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			form: statsForm(uuid.NewString()),
			setup: func(store *mocks.MockUserStatStore) {
				store.EXPECT().RecordStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, types.ErrInvalidDB)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockUserStatStore(ctrl)
			tt.setup(store)

			a := handlers.NewUserAPI("/user", pacman.NewUserStats(store))

			req := createFormRequest("/user/stats", tt.form)
			resp, err := test.InvokeService(a.Service, "/user/stats", *req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, handlers.StatsResponse{RS: "error"}, decode[handlers.StatsResponse](t, resp))
		})
	}
}

func TestUserAPI_NewIDError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockUserStatStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(types.ErrInvalidDB)

	a := handlers.NewUserAPI("/user", pacman.NewUserStats(store))

	req := createRequest(http.MethodGet, "/user/id", nil)
	resp, err := test.InvokeService(a.Service, "/user/id", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
