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

const (
	rsSuccess = "success"
	rsError   = "error"
)

type HighScoresAPI struct {
	api.Service
	scores *pacman.HighScores
}

func NewHighScoresAPI(base string, scores *pacman.HighScores) *HighScoresAPI {
	a := &HighScoresAPI{
		scores: scores,
		Service: api.Service{
			APIName: "highscores",
			Mounts:  map[string]*chi.Mux{},
		},
	}
	a.Service.Mounts[base] = a.Routes()
	return a
}

func (a *HighScoresAPI) Register(app server.Server) error {
	if err := a.Service.Register(app); err != nil {
		return err
	}
	return nil
}

func (a *HighScoresAPI) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/list", a.List)
	r.Post("/", a.Submit)
	return r
}

type HighScoreEntry struct {
	Name  string `json:"name"`
	Cloud string `json:"cloud"`
	Zone  string `json:"zone"`
	Host  string `json:"host"`
	Score int    `json:"score"`
}

// SubmitResponse echoes the submission. On failure Score and Level carry the
// raw form values.
type SubmitResponse struct {
	Name  string `json:"name"`
	Zone  string `json:"zone"`
	Score any    `json:"score"`
	Level any    `json:"level"`
	RS    string `json:"rs"`
}

func (a *HighScoresAPI) List(w http.ResponseWriter, r *http.Request) {
	scores, err := a.scores.List(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to list high scores")
		request.Reply(r, w, "failed to list high scores", http.StatusInternalServerError)
		return
	}

	out := make([]HighScoreEntry, 0, len(scores))
	for _, s := range scores {
		out = append(out, HighScoreEntry{
			Name:  s.Name,
			Cloud: s.Cloud,
			Zone:  s.Zone,
			Host:  s.Host,
			Score: s.Score,
		})
	}
	request.Reply(r, w, out, http.StatusOK)
}

func (a *HighScoresAPI) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		log.Ctx(ctx).Err(err).Msg("failed to parse high score form")
		request.Reply(r, w, SubmitResponse{RS: rsError}, http.StatusBadRequest)
		return
	}

	failed := SubmitResponse{
		Name:  r.PostForm.Get("name"),
		Zone:  r.PostForm.Get("zone"),
		Score: r.PostForm.Get("score"),
		Level: r.PostForm.Get("level"),
		RS:    rsError,
	}

	nums, err := formInts(r, "score", "level")
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("rejected high score")
		request.Reply(r, w, failed, http.StatusBadRequest)
		return
	}

	info := requestInfo(r)
	score := &types.HighScore{
		Name:      r.PostForm.Get("name"),
		Cloud:     r.PostForm.Get("cloud"),
		Zone:      r.PostForm.Get("zone"),
		Host:      r.PostForm.Get("host"),
		Score:     nums["score"],
		Level:     nums["level"],
		Referer:   info.Referer,
		UserAgent: info.UserAgent,
		Hostname:  info.Hostname,
		IPAddr:    info.IPAddr,
	}

	if err := a.scores.Submit(ctx, score); err != nil {
		log.Ctx(ctx).Err(err).Msg("failed to save high score")
		request.Reply(r, w, failed, http.StatusInternalServerError)
		return
	}

	request.Reply(r, w, SubmitResponse{
		Name:  score.Name,
		Zone:  score.Zone,
		Score: score.Score,
		Level: score.Level,
		RS:    rsSuccess,
	}, http.StatusOK)
}
