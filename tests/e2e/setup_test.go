//go:build integration

package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/procat-facets/internal/app/catalog/repo"
	"github.com/light-bringer/procat-facets/internal/pkg/config"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
	"github.com/light-bringer/procat-facets/internal/services"
	httphandler "github.com/light-bringer/procat-facets/internal/transport/http"
	"github.com/light-bringer/procat-facets/tests/testutil"
)

// testServer is the HTTP surface of the service on top of the emulator.
type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func setupServer(t *testing.T, seed *testutil.Seed) *testServer {
	t.Helper()

	client := testutil.SetupSpannerTest(t)
	seed.Apply(t, client)

	cfg, err := config.Load()
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)
	m := metrics.New(prometheus.NewRegistry())
	opts := services.Wire(repo.NewCatalogRepo(client, logger), cfg, logger, m)

	srv := httptest.NewServer(httphandler.NewRouter(opts.HTTPHandler, m, logger, cfg.Server.RequestTimeout))
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv}
}

func (s *testServer) get(path string, out any) int {
	s.t.Helper()
	resp, err := s.srv.Client().Get(s.srv.URL + path)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *testServer) post(path string, body any, out any) int {
	s.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(s.t, err)
	resp, err := s.srv.Client().Post(s.srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(s.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
