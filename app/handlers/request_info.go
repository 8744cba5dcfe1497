// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/cloudzero/pacman/app/types"
)

// requestInfo captures where a write came from. The client address honors
// the first X-Forwarded-For hop when present.
func requestInfo(r *http.Request) types.RequestInfo {
	hostname := r.Host
	if h, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = h
	}

	ip := r.RemoteAddr
	if h, _, err := net.SplitHostPort(ip); err == nil {
		ip = h
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			ip = first
		}
	}

	return types.RequestInfo{
		Referer:   r.Referer(),
		UserAgent: r.UserAgent(),
		Hostname:  hostname,
		IPAddr:    ip,
	}
}

// formInts parses the named form values as integers. The first missing or
// malformed value is reported.
func formInts(r *http.Request, names ...string) (map[string]int, error) {
	out := make(map[string]int, len(names))
	for _, name := range names {
		raw := strings.TrimSpace(r.PostForm.Get(name))
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s=%q is not an integer", types.ErrInvalidInput, name, raw)
		}
		out[name] = v
	}
	return out, nil
}
