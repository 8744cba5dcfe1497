// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-obvious/server"
	"github.com/go-obvious/server/api"
)

// ProfilingAPI serves the runtime profiles. Named profiles (heap, goroutine,
// ...) resolve only when mounted at /debug/pprof/.
type ProfilingAPI struct {
	api.Service
}

func NewProfilingAPI(base string) *ProfilingAPI {
	a := &ProfilingAPI{
		Service: api.Service{
			APIName: "profiling",
			Mounts:  map[string]*chi.Mux{},
		},
	}
	a.Service.Mounts[base] = a.Routes()
	return a
}

func (a *ProfilingAPI) Register(app server.Server) error {
	if err := a.Service.Register(app); err != nil {
		return err
	}
	return nil
}

func (a *ProfilingAPI) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", pprof.Index)
	r.Get("/cmdline", pprof.Cmdline)
	r.Get("/profile", pprof.Profile)
	r.Get("/symbol", pprof.Symbol)
	r.Post("/symbol", pprof.Symbol)
	r.Get("/trace", pprof.Trace)
	r.Get("/{profile}", pprof.Index)
	return r
}
