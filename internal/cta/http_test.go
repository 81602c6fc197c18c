package cta

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient points a Client at a fake upstream and returns both. The
// server is closed automatically when the test finishes.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		Key:          "TESTKEY",
		PositionsURL: server.URL + "/positions",
		FollowURL:    server.URL + "/follow",
		Timeout:      time.Second,
	})

	return client, server
}

// staticUpstream always answers with the given body.
func staticUpstream(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}
