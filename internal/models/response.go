package models

import (
	"github.com/walkingsnake-lab/ctamap/internal/cta"
)

// TrainsResponse is the aggregate positions payload.
type TrainsResponse struct {
	Trains []cta.Record `json:"trains"`
}

// FollowResponse is the single-run detail payload. Position marshals to
// null when the upstream did not report one.
type FollowResponse struct {
	Eta      []cta.Record `json:"eta"`
	Position cta.Record   `json:"position"`
}

// ErrorResponse is the error payload for the detail and geometry endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTrainsResponse builds a TrainsResponse, normalizing a nil slice so the
// JSON always carries an array.
func NewTrainsResponse(trains []cta.Record) TrainsResponse {
	if trains == nil {
		trains = []cta.Record{}
	}
	return TrainsResponse{Trains: trains}
}

// NewFollowResponse builds a FollowResponse from a follow lookup result.
func NewFollowResponse(result *cta.FollowResult) FollowResponse {
	etas := result.Etas
	if etas == nil {
		etas = []cta.Record{}
	}
	return FollowResponse{Eta: etas, Position: result.Position}
}
