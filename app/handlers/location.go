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
)

// LocationAPI reports where the answering instance runs.
type LocationAPI struct {
	api.Service
	locator *pacman.Locator
}

func NewLocationAPI(base string, locator *pacman.Locator) *LocationAPI {
	a := &LocationAPI{
		locator: locator,
		Service: api.Service{
			APIName: "location",
			Mounts:  map[string]*chi.Mux{},
		},
	}
	a.Service.Mounts[base] = a.Routes()
	return a
}

func (a *LocationAPI) Register(app server.Server) error {
	if err := a.Service.Register(app); err != nil {
		return err
	}
	return nil
}

func (a *LocationAPI) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/metadata", a.GetMetadata)
	return r
}

func (a *LocationAPI) GetMetadata(w http.ResponseWriter, r *http.Request) {
	loc, err := a.locator.Locate(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Err(err).Msg("failed to resolve location")
		request.Reply(r, w, "failed to resolve location", http.StatusInternalServerError)
		return
	}
	request.Reply(r, w, loc, http.StatusOK)
}
