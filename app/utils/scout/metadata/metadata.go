// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package metadata provides the HTTP plumbing shared by the provider scouts:
// a bounded GET against a metadata endpoint that classifies failures into the
// probe error taxonomy.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cloudzero/pacman/app/utils/scout/types"
)

// DefaultTimeout is the time budget of a single metadata request.
const DefaultTimeout = 10 * time.Second

// NewClient returns an HTTP client suitable for link-local metadata services.
// Proxies are ignored since metadata endpoints are only reachable directly.
// Redirects are not followed, so a 3xx answer fails the probe.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Get issues a GET request to endpoint with the given headers and returns the
// trimmed response body. Only a 200 response is considered successful.
func Get(ctx context.Context, client *http.Client, endpoint string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", Classify(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %d", types.ErrProbeBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Classify(ctx, err)
	}

	return strings.TrimSpace(string(body)), nil
}

// Classify wraps a transport error with ErrProbeTimeout or ErrProbeUnreachable.
func Classify(ctx context.Context, err error) error {
	if IsTimeout(ctx, err) {
		return fmt.Errorf("%w: %w", types.ErrProbeTimeout, err)
	}
	return fmt.Errorf("%w: %w", types.ErrProbeUnreachable, err)
}

// IsTimeout reports whether err was caused by an expired deadline, either the
// context's or the client's.
func IsTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
