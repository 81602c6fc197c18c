package cta

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redPositionsBody = `{
	"ctatt": {
		"errCd": "0",
		"errNm": null,
		"route": [{
			"@name": "red",
			"train": [
				{"rn": "417", "destNm": "Howard", "lat": "41.85", "lon": "-87.63"},
				{"rn": "418", "destNm": "95th/Dan Ryan", "lat": "41.90", "lon": "-87.62"}
			]
		}]
	}
}`

func TestFetchRouteSendsExpectedQuery(t *testing.T) {
	var query atomic.Pointer[map[string]string]
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]string{
			"key":        r.URL.Query().Get("key"),
			"rt":         r.URL.Query().Get("rt"),
			"outputType": r.URL.Query().Get("outputType"),
		}
		query.Store(&params)
		_, _ = w.Write([]byte(redPositionsBody))
	}))

	client.FetchRoute(context.Background(), "red")

	sent := query.Load()
	require.NotNil(t, sent)
	assert.Equal(t, "TESTKEY", (*sent)["key"])
	assert.Equal(t, "red", (*sent)["rt"])
	assert.Equal(t, "JSON", (*sent)["outputType"])
}

func TestFetchRouteStampsRouteCode(t *testing.T) {
	client, _ := newTestClient(t, staticUpstream(redPositionsBody))

	trains := client.FetchRoute(context.Background(), "red")

	require.Len(t, trains, 2)
	for _, train := range trains {
		assert.Equal(t, "red", train["rt"])
	}
	assert.Equal(t, "417", trains[0]["rn"])
	assert.Equal(t, "Howard", trains[0]["destNm"])
}

func TestFetchRouteOverwritesConflictingRouteField(t *testing.T) {
	body := `{"ctatt": {"errCd": "0", "route": {"@name": "red", "train": {"rn": "417", "rt": "something-else"}}}}`
	client, _ := newTestClient(t, staticUpstream(body))

	trains := client.FetchRoute(context.Background(), "red")

	require.Len(t, trains, 1)
	assert.Equal(t, "red", trains[0]["rt"])
}

func TestFetchRouteSingleObjectEquivalence(t *testing.T) {
	// A route with exactly one train arrives as nested bare objects; the
	// normalized output must match the array form exactly.
	asArrays := `{"ctatt": {"errCd": "0", "route": [{"@name": "Y", "train": [{"rn": "501"}]}]}}`
	asObjects := `{"ctatt": {"errCd": "0", "route": {"@name": "Y", "train": {"rn": "501"}}}}`

	clientArrays, _ := newTestClient(t, staticUpstream(asArrays))
	clientObjects, _ := newTestClient(t, staticUpstream(asObjects))

	fromArrays := clientArrays.FetchRoute(context.Background(), "Y")
	fromObjects := clientObjects.FetchRoute(context.Background(), "Y")

	assert.Equal(t, fromArrays, fromObjects)
	require.Len(t, fromObjects, 1)
	assert.Equal(t, "501", fromObjects[0]["rn"])
}

func TestFetchRouteEmptyOnUpstreamErrorStatus(t *testing.T) {
	body := `{"ctatt": {"errCd": "101", "errNm": "Invalid API key"}}`
	client, _ := newTestClient(t, staticUpstream(body))

	assert.Empty(t, client.FetchRoute(context.Background(), "red"))
}

func TestFetchRouteEmptyOnMissingRouteData(t *testing.T) {
	client, _ := newTestClient(t, staticUpstream(`{"ctatt": {"errCd": "0"}}`))

	assert.Empty(t, client.FetchRoute(context.Background(), "red"))
}

func TestFetchRouteSkipsEntriesWithoutTrains(t *testing.T) {
	body := `{"ctatt": {"errCd": "0", "route": [{"@name": "red"}, {"@name": "red", "train": [{"rn": "417"}]}]}}`
	client, _ := newTestClient(t, staticUpstream(body))

	trains := client.FetchRoute(context.Background(), "red")

	require.Len(t, trains, 1)
	assert.Equal(t, "417", trains[0]["rn"])
}

func TestFetchRouteEmptyOnMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, staticUpstream(`<html>service unavailable</html>`))

	assert.Empty(t, client.FetchRoute(context.Background(), "red"))
}

func TestFetchRouteEmptyOnTransportError(t *testing.T) {
	client, server := newTestClient(t, staticUpstream(redPositionsBody))
	server.Close()

	assert.Empty(t, client.FetchRoute(context.Background(), "red"))
}

func TestFetchRouteEmptyOnTimeout(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	client.timeout = 50 * time.Millisecond

	start := time.Now()
	trains := client.FetchRoute(context.Background(), "red")

	assert.Empty(t, trains)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFetchRouteIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t, staticUpstream(redPositionsBody))

	first := client.FetchRoute(context.Background(), "red")
	second := client.FetchRoute(context.Background(), "red")

	assert.Equal(t, first, second)
}
