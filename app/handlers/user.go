// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-obvious/server"
	"github.com/go-obvious/server/api"
	"github.com/go-obvious/server/request"
	"github.com/rs/zerolog/log"

	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/types"
)

// UserAPI hands out player sessions and records their progress.
type UserAPI struct {
	api.Service
	stats *pacman.UserStats
}

func NewUserAPI(base string, stats *pacman.UserStats) *UserAPI {
	a := &UserAPI{
		stats: stats,
		Service: api.Service{
			APIName: "user",
			Mounts:  map[string]*chi.Mux{},
		},
	}
	a.Service.Mounts[base] = a.Routes()
	return a
}

func (a *UserAPI) Register(app server.Server) error {
	if err := a.Service.Register(app); err != nil {
		return err
	}
	return nil
}

func (a *UserAPI) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/id", a.NewID)
	r.Post("/stats", a.PostStats)
	r.Get("/stats", a.ListStats)
	return r
}

type StatsResponse struct {
	RS string `json:"rs"`
}

type UserStatEntry struct {
	Cloud    string `json:"cloud"`
	Zone     string `json:"zone"`
	Host     string `json:"host"`
	Score    int    `json:"score"`
	Level    int    `json:"level"`
	Lives    int    `json:"lives"`
	ET       int    `json:"et"`
	TxnCount int    `json:"txncount"`
}

// NewID answers the new session id as a JSON string.
func (a *UserAPI) NewID(w http.ResponseWriter, r *http.Request) {
	id, err := a.stats.NewID(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to create user id")
		request.Reply(r, w, "failed to create user id", http.StatusInternalServerError)
		return
	}
	request.Reply(r, w, id.String(), http.StatusOK)
}

func (a *UserAPI) PostStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		log.Ctx(ctx).Err(err).Msg("failed to parse stats form")
		request.Reply(r, w, StatsResponse{RS: rsError}, http.StatusBadRequest)
		return
	}

	nums, err := formInts(r, "score", "level", "lives", "elapsedTime")
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("rejected user stats")
		request.Reply(r, w, StatsResponse{RS: rsError}, http.StatusBadRequest)
		return
	}

	update := types.UserStatUpdate{
		Cloud:       r.PostForm.Get("cloud"),
		Zone:        r.PostForm.Get("zone"),
		Host:        r.PostForm.Get("host"),
		Score:       nums["score"],
		Level:       nums["level"],
		Lives:       nums["lives"],
		ElapsedTime: nums["elapsedTime"],
		RequestInfo: requestInfo(r),
	}

	matched, err := a.stats.Record(ctx, r.PostForm.Get("userId"), update)
	if err != nil {
		log.Ctx(ctx).Err(err).Msg("failed to update user stats")
		request.Reply(r, w, StatsResponse{RS: rsError}, http.StatusInternalServerError)
		return
	}

	rs := rsError
	if matched {
		rs = rsSuccess
	}
	request.Reply(r, w, StatsResponse{RS: rs}, http.StatusOK)
}

func (a *UserAPI) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.stats.List(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to list user stats")
		request.Reply(r, w, "failed to list user stats", http.StatusInternalServerError)
		return
	}

	out := make([]UserStatEntry, 0, len(stats))
	for _, s := range stats {
		entry := UserStatEntry{
			Cloud:    s.Cloud,
			Zone:     s.Zone,
			Host:     s.Host,
			Level:    s.Level,
			Lives:    s.Lives,
			ET:       s.ElapsedTime,
			TxnCount: s.UpdateCounter,
		}
		if s.Score != nil {
			entry.Score = *s.Score
		}
		out = append(out, entry)
	}
	request.Reply(r, w, out, http.StatusOK)
}
