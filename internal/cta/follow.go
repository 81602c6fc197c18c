package cta

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/walkingsnake-lab/ctamap/internal/logging"
	"github.com/walkingsnake-lab/ctamap/internal/utils"
)

var (
	// ErrInvalidRunNumber means the run number failed validation; no
	// upstream request was made.
	ErrInvalidRunNumber = errors.New("invalid run number")

	// ErrUpstreamUnavailable means the upstream request itself failed
	// (transport error, timeout, or undecodable payload).
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// FollowResult holds the normalized outcome of following one train run.
type FollowResult struct {
	// Etas is the list of predicted arrivals, never nil.
	Etas []Record

	// Position is the train's reported position, if the upstream included
	// one. Nil marshals to JSON null.
	Position Record
}

// FollowRun fetches the upcoming arrival predictions for a single train run.
// Unlike the aggregate path, failures here are surfaced: the caller asked
// about one specific run and needs to distinguish "the lookup failed" from
// "the run is not active". An inactive run is a successful result with no
// ETAs.
func (c *Client) FollowRun(ctx context.Context, runNumber string) (*FollowResult, error) {
	if err := utils.ValidateRunNumber(runNumber); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRunNumber, err)
	}

	logger := logging.FromContext(ctx).With(
		slog.String("component", "cta_follow"),
		slog.String("run", runNumber))

	params := url.Values{}
	params.Set("runnumber", runNumber)

	env, err := c.get(ctx, c.followURL, params)
	if err != nil {
		logging.LogError(logger, "error following run", err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	if !env.ok() {
		// The upstream reports a non-success status for runs that are
		// not currently in service.
		logger.Debug("upstream reported no data for run",
			slog.String("errCd", string(env.Ctatt.ErrCd)),
			slog.String("errNm", env.Ctatt.ErrNm))
		return &FollowResult{Etas: []Record{}}, nil
	}

	etas := []Record(env.Ctatt.Etas)
	if etas == nil {
		etas = []Record{}
	}

	return &FollowResult{
		Etas:     etas,
		Position: env.Ctatt.Position,
	}, nil
}
