package etscore

import (
	"context"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ResolveLocationID translates a free-text place name into the vendor's
// numeric location identifier. It returns the first CITY-type id in
// flattened items/locations document order. Upstream failures are absorbed
// and logged; callers see them uniformly as not-found. Each invocation makes
// a fresh autocomplete call: no retry, no caching.
func (c *Client) ResolveLocationID(ctx context.Context, query string) (int, bool) {
	body, err := c.Autocomplete(ctx, query)
	if err != nil {
		c.logger.Error("Autocomplete request failed",
			"query", query,
			"error", err)
		return 0, false
	}

	if !gjson.ValidBytes(body) {
		c.logger.Warn("Autocomplete response is not valid JSON", "query", query)
		return 0, false
	}

	items := gjson.GetBytes(body, "items")
	if !items.Exists() {
		c.logger.Warn("Autocomplete response has no items array", "query", query)
		return 0, false
	}

	locationID := 0
	found := false
	items.ForEach(func(_, item gjson.Result) bool {
		item.Get("locations").ForEach(func(_, loc gjson.Result) bool {
			if loc.Get("locationType").String() != locationTypeCity {
				return true
			}
			raw := loc.Get("id").String()
			id, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				// Malformed ids are skipped, not fatal.
				c.logger.Warn("Cannot parse location id",
					"query", query,
					"id", raw)
				return true
			}
			locationID = id
			found = true
			return false
		})
		return !found
	})

	if !found {
		c.logger.Debug("No CITY location matched query", "query", query)
		return 0, false
	}

	c.logger.Debug("Resolved location id",
		"query", query,
		"location_id", locationID)
	return locationID, true
}
