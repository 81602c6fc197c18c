package restapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/walkingsnake-lab/ctamap/internal/app"
	"github.com/walkingsnake-lab/ctamap/internal/cta"
)

// newTestAPI builds a RestAPI whose CTA client talks to the given fake
// upstream.
func newTestAPI(t *testing.T, upstream http.Handler, configure ...func(*app.Config)) *RestAPI {
	t.Helper()

	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	config := app.Config{Env: "test"}
	for _, fn := range configure {
		fn(&config)
	}

	application := &app.Application{
		Config: config,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		CTA: cta.NewClient(cta.Config{
			Key:          "TESTKEY",
			PositionsURL: upstreamServer.URL + "/positions",
			FollowURL:    upstreamServer.URL + "/follow",
			Timeout:      time.Second,
		}),
	}

	return NewRestAPI(application)
}

// serveAndGet spins up the full router and issues one GET against it.
func serveAndGet(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// upstreamWith returns a handler answering every request with the body.
func upstreamWith(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// brokenUpstream answers with garbage, which the client treats the same as
// an unreachable upstream.
func brokenUpstream() http.Handler {
	return upstreamWith(`<html>gateway timeout</html>`)
}
