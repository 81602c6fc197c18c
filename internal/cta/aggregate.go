package cta

import (
	"context"
	"sync"
)

// AllPositions fetches every configured route in parallel and concatenates
// the results in route order. Routes that fail contribute zero records; the
// call itself cannot fail, only degrade to fewer trains.
func (c *Client) AllPositions(ctx context.Context) []Record {
	results := make([][]Record, len(c.routes))

	var wg sync.WaitGroup
	for i, route := range c.routes {
		i, route := i, route
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine writes only its own slot.
			results[i] = c.FetchRoute(ctx, route)
		}()
	}
	wg.Wait()

	var trains []Record
	for _, batch := range results {
		trains = append(trains, batch...)
	}

	return trains
}
