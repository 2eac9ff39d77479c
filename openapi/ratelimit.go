package openapi

import (
	"net/http"
	"strconv"
	"time"
)

const (
	HeaderRateLimitLimit     = "X-Ratelimit-Limit"
	HeaderRateLimitRemaining = "X-Ratelimit-Remaining"
	HeaderRateLimitReset     = "X-Ratelimit-Reset"
)

// RateLimit is the server's view of the current rate-limit window. The
// client only reports it; throttling is left to the caller.
type RateLimit struct {
	Limit     int
	Remaining int
	// Reset is the time until the window resets
	Reset time.Duration
	// Present is false when the response carried no rate-limit headers
	Present bool
}

// ParseRateLimit reads the X-Ratelimit-* headers. Malformed values are
// treated as absent.
func ParseRateLimit(header http.Header) RateLimit {
	var rl RateLimit

	if v, err := strconv.Atoi(header.Get(HeaderRateLimitLimit)); err == nil {
		rl.Limit = v
		rl.Present = true
	}
	if v, err := strconv.Atoi(header.Get(HeaderRateLimitRemaining)); err == nil {
		rl.Remaining = v
		rl.Present = true
	}
	if v, err := strconv.Atoi(header.Get(HeaderRateLimitReset)); err == nil {
		rl.Reset = time.Duration(v) * time.Second
		rl.Present = true
	}

	return rl
}
