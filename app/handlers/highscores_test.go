// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/go-obvious/server/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/handlers"
	"github.com/cloudzero/pacman/app/types"
	"github.com/cloudzero/pacman/app/types/mocks"
)

func TestHighScoresAPI_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().Top(gomock.Any(), pacman.DefaultTopScores).Return([]types.HighScore{
		{Name: "clyde", Cloud: "GCP", Zone: "us-central1-a", Host: "pacman-1", Score: 9000, Level: 7, IPAddr: "10.0.0.9"},
		{Name: "pinky", Cloud: "AWS", Zone: "us-east-1b", Host: "pacman-2", Score: 300, Level: 1},
	}, nil)

	a := handlers.NewHighScoresAPI("/highscores", pacman.NewHighScores(store, 0))

	req := createRequest(http.MethodGet, "/highscores/list", nil)
	resp, err := test.InvokeService(a.Service, "/highscores/list", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []handlers.HighScoreEntry{
		{Name: "clyde", Cloud: "GCP", Zone: "us-central1-a", Host: "pacman-1", Score: 9000},
		{Name: "pinky", Cloud: "AWS", Zone: "us-east-1b", Host: "pacman-2", Score: 300},
	}, decode[[]handlers.HighScoreEntry](t, resp))
}

func TestHighScoresAPI_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().Top(gomock.Any(), gomock.Any()).Return(nil, types.ErrInvalidDB)

	a := handlers.NewHighScoresAPI("/highscores", pacman.NewHighScores(store, 0))

	req := createRequest(http.MethodGet, "/highscores/list", nil)
	resp, err := test.InvokeService(a.Service, "/highscores/list", *req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHighScoresAPI_Submit(t *testing.T) {
	form := url.Values{
		"name":  {"blinky"},
		"cloud": {"Azure"},
		"zone":  {"eastus"},
		"host":  {"pacman-3"},
		"score": {"1500"},
		"level": {"4"},
	}

	tests := []struct {
		name       string
		form       url.Values
		setup      func(store *mocks.MockHighScoreStore)
		wantStatus int
		wantRS     string
		wantName   string
		wantScore  any
	}{
		{
			name: "saved",
			form: form,
			setup: func(store *mocks.MockHighScoreStore) {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, hs *types.HighScore) error {
						assert.Equal(t, "blinky", hs.Name)
						assert.Equal(t, "Azure", hs.Cloud)
						assert.Equal(t, 1500, hs.Score)
						assert.Equal(t, 4, hs.Level)
						assert.Equal(t, "pacman-test", hs.UserAgent)
						assert.Equal(t, "http://pacman.local/", hs.Referer)
						assert.Equal(t, "192.0.2.1", hs.IPAddr)
						return nil
					})
			},
			wantStatus: http.StatusOK,
			wantRS:     "success",
			wantScore:  float64(1500),
		},
		{
			name: "escaped name echoed",
			form: url.Values{"name": {"Tom & Jerry"}, "score": {"20"}, "level": {"1"}},
			setup: func(store *mocks.MockHighScoreStore) {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantRS:     "success",
			wantName:   "Tom &amp; Jerry",
			wantScore:  float64(20),
		},
		{
			name: "malformed score",
			form: url.Values{"name": {"blinky"}, "score": {"lots"}, "level": {"1"}},
			setup: func(*mocks.MockHighScoreStore) {
				// nothing stored
			},
			wantStatus: http.StatusBadRequest,
			wantRS:     "error",
			wantScore:  "lots",
		},
		{
			name: "store failure",
			form: form,
			setup: func(store *mocks.MockHighScoreStore) {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(types.ErrInvalidDB)
			},
			wantStatus: http.StatusInternalServerError,
			wantRS:     "error",
			wantScore:  "1500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockHighScoreStore(ctrl)
			tt.setup(store)

			a := handlers.NewHighScoresAPI("/highscores", pacman.NewHighScores(store, 0))

			req := createFormRequest("/highscores", tt.form)
			resp, err := test.InvokeService(a.Service, "/highscores", *req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode[map[string]any](t, resp)
			assert.Equal(t, tt.wantRS, body["rs"])
			wantName := tt.wantName
			if wantName == "" {
				wantName = "blinky"
			}
			assert.Equal(t, wantName, body["name"])
			assert.Equal(t, tt.wantScore, body["score"])
		})
	}
}
