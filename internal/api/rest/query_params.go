package rest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HistoricalQueryParams holds query parameters for GET /coins/historical
type HistoricalQueryParams struct {
	IDs      []int64
	Interval string
	Start    *time.Time
	End      *time.Time
}

// RankQueryParams holds query parameters for GET /coins/rank
type RankQueryParams struct {
	Start int
	Limit int
}

// parseIDList splits a comma-separated id parameter into int64 ids
func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTimeParam parses an optional RFC 3339 query parameter
func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, expected RFC 3339 timestamp", name)
	}
	return &t, nil
}

// ParseHistoricalQuery parses query parameters for GET /coins/historical
func ParseHistoricalQuery(c *gin.Context) (*HistoricalQueryParams, error) {
	ids, err := parseIDList(c.Query("identifiers"))
	if err != nil {
		return nil, err
	}

	interval := c.DefaultQuery("interval", "1h")

	start, err := parseTimeParam(c, "start")
	if err != nil {
		return nil, err
	}
	end, err := parseTimeParam(c, "end")
	if err != nil {
		return nil, err
	}

	return &HistoricalQueryParams{
		IDs:      ids,
		Interval: interval,
		Start:    start,
		End:      end,
	}, nil
}

// ParseRankQuery parses query parameters for GET /coins/rank
func ParseRankQuery(c *gin.Context) (*RankQueryParams, error) {
	start, err := strconv.Atoi(c.DefaultQuery("start", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid start, expected an integer")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid limit, expected an integer")
	}

	return &RankQueryParams{Start: start, Limit: limit}, nil
}
