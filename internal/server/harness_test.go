package server

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-wealth/internal/app"
	"github.com/bobmcallan/vire-wealth/internal/common"
)

func fixedNow() time.Time {
	return time.Date(2025, time.October, 15, 9, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	a, err := app.NewAppWithConfig(common.NewDefaultConfig(), common.NewSilentLogger())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	a.Charts = app.NewChartService(a.Fixtures.Series, a.Config.Chart, fixedNow)
	s := NewServer(a)
	s.now = fixedNow
	return s
}

func doRequest(t *testing.T, s *Server, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	decodeBody(t, rr, &m)
	return m
}
