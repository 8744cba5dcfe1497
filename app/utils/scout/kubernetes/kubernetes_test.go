// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package kubernetes

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cloudzero/pacman/app/utils/scout/types"
)

const (
	testNodeEnv = "PACMAN_TEST_NODE_NAME"
	testToken   = "test-token"
)

type fakeAPIServer struct {
	*httptest.Server
	calls atomic.Int32
}

// newFakeAPIServer serves a single node and writes the token and CA files the
// probe needs into a temp dir.
func newFakeAPIServer(t *testing.T, nodeName string, labels map[string]string, status int) (*fakeAPIServer, []Option) {
	t.Helper()

	f := &fakeAPIServer{}
	f.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")

		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if status != http.StatusOK || r.URL.Path != "/api/v1/nodes/"+nodeName {
			code := status
			if code == http.StatusOK {
				code = http.StatusNotFound
			}
			w.WriteHeader(code)
			_ = json.NewEncoder(w).Encode(metav1.Status{
				TypeMeta: metav1.TypeMeta{Kind: "Status", APIVersion: "v1"},
				Status:   metav1.StatusFailure,
				Code:     int32(code),
			})
			return
		}

		_ = json.NewEncoder(w).Encode(corev1.Node{
			TypeMeta:   metav1.TypeMeta{Kind: "Node", APIVersion: "v1"},
			ObjectMeta: metav1.ObjectMeta{Name: nodeName, Labels: labels},
		})
	}))
	t.Cleanup(f.Close)

	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token")
	caPath := filepath.Join(dir, "ca.crt")
	require.NoError(t, os.WriteFile(tokenPath, []byte(testToken+"\n"), 0o600))
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: f.Certificate().Raw})
	require.NoError(t, os.WriteFile(caPath, caPEM, 0o600))

	return f, []Option{
		WithAPIServer(f.URL),
		WithTokenPath(tokenPath),
		WithCACertPath(caPath),
		WithNodeNameEnv(testNodeEnv),
		WithTimeout(2 * time.Second),
	}
}

func TestProbe_Success(t *testing.T) {
	f, opts := newFakeAPIServer(t, "node-1", map[string]string{
		corev1.LabelTopologyZone:   "us-east-1a",
		corev1.LabelTopologyRegion: "us-east-1",
	}, http.StatusOK)
	t.Setenv(testNodeEnv, "node-1")

	id, err := NewScout(opts...).Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.CloudIdentity{Cloud: types.CloudProviderKubernetes, Zone: "us-east-1a"}, id)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestProbe_NoLabels(t *testing.T) {
	_, opts := newFakeAPIServer(t, "node-1", nil, http.StatusOK)
	t.Setenv(testNodeEnv, "node-1")

	id, err := NewScout(opts...).Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.ZoneUnknown, id.Zone)
}

func TestProbe_MissingNodeName(t *testing.T) {
	f, opts := newFakeAPIServer(t, "node-1", nil, http.StatusOK)
	t.Setenv(testNodeEnv, "")

	_, err := NewScout(opts...).Probe(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrCredentialUnavailable)
	assert.Zero(t, f.calls.Load(), "no request may be issued without a node name")
}

func TestProbe_MissingCredentials(t *testing.T) {
	f, opts := newFakeAPIServer(t, "node-1", nil, http.StatusOK)
	t.Setenv(testNodeEnv, "node-1")

	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		opt  Option
	}{
		{"token", WithTokenPath(missing)},
		{"ca", WithCACertPath(missing)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScout(append(opts, tt.opt)...).Probe(context.Background())
			require.Error(t, err)
			assert.Equal(t, types.KindCredential, types.Classify(err))
		})
	}
	assert.Zero(t, f.calls.Load())
}

func TestProbe_BadStatus(t *testing.T) {
	f, opts := newFakeAPIServer(t, "node-1", nil, http.StatusForbidden)
	t.Setenv(testNodeEnv, "node-1")

	_, err := NewScout(opts...).Probe(context.Background())
	require.Error(t, err)
	assert.Equal(t, types.KindBadStatus, types.Classify(err))
	assert.Equal(t, int32(1), f.calls.Load(), "requests must not be retried")
}

func TestProbe_Unreachable(t *testing.T) {
	f, opts := newFakeAPIServer(t, "node-1", nil, http.StatusOK)
	t.Setenv(testNodeEnv, "node-1")
	f.Close()

	_, err := NewScout(opts...).Probe(context.Background())
	require.Error(t, err)
	assert.Contains(t, []string{types.KindUnreachable, types.KindTimeout}, types.Classify(err))
}

func TestNodeZone(t *testing.T) {
	tests := []struct {
		name   string
		labels map[string]string
		want   string
	}{
		{"topology zone", map[string]string{corev1.LabelTopologyZone: "z1", corev1.LabelFailureDomainBetaZone: "z2"}, "z1"},
		{"beta zone", map[string]string{corev1.LabelFailureDomainBetaZone: "z2"}, "z2"},
		{"region only", map[string]string{corev1.LabelTopologyRegion: "r1"}, "r1"},
		{"blank zone skipped", map[string]string{corev1.LabelTopologyZone: " ", corev1.LabelTopologyRegion: "r1"}, "r1"},
		{"none", nil, types.ZoneUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &corev1.Node{ObjectMeta: metav1.ObjectMeta{Labels: tt.labels}}
			assert.Equal(t, tt.want, NodeZone(node))
		})
	}
}

func TestNewScout_Defaults(t *testing.T) {
	s := NewScout(WithAPIServer(""), WithTimeout(0))
	assert.Equal(t, DefaultAPIServer, s.apiServer)
	assert.Equal(t, DefaultTokenPath, s.tokenPath)
	assert.Equal(t, DefaultCACertPath, s.caCertPath)
	assert.Equal(t, DefaultNodeNameEnv, s.nodeNameEnv)
	assert.Equal(t, 10*time.Second, s.timeout)
	assert.Equal(t, types.CloudProviderKubernetes, s.Provider())
}
