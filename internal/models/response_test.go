package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkingsnake-lab/ctamap/internal/cta"
)

func TestNewTrainsResponseNormalizesNil(t *testing.T) {
	data, err := json.Marshal(NewTrainsResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"trains": []}`, string(data))
}

func TestNewTrainsResponseKeepsRecords(t *testing.T) {
	response := NewTrainsResponse([]cta.Record{{"rn": "417", "rt": "red"}})

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trains": [{"rn": "417", "rt": "red"}]}`, string(data))
}

func TestNewFollowResponseMarshalsMissingPositionAsNull(t *testing.T) {
	response := NewFollowResponse(&cta.FollowResult{Etas: []cta.Record{}})

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"eta": [], "position": null}`, string(data))
}

func TestNewFollowResponseKeepsEtasAndPosition(t *testing.T) {
	response := NewFollowResponse(&cta.FollowResult{
		Etas:     []cta.Record{{"staNm": "Belmont"}},
		Position: cta.Record{"lat": "41.9"},
	})

	data, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"eta": [{"staNm": "Belmont"}], "position": {"lat": "41.9"}}`, string(data))
}
