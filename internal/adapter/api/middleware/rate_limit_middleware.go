package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
	"altanzam/pkg/response"
)

type RateLimiter struct {
	limiter *limiter.Limiter
}

// NewRateLimiter takes a formatted rate such as "10-M".
func NewRateLimiter(formatted string) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		limiter: limiter.New(memory.NewStore(), rate),
	}, nil
}

// Limit counts requests per caller and route. Signed-in callers are keyed by
// uid, guests by IP.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := c.RealIP()
		if uid, ok := c.Get(UIDKey).(string); ok && uid != "" {
			caller = uid
		}
		key := caller + ":" + c.Path()

		ctx, err := rl.limiter.Get(c.Request().Context(), key)
		if err != nil {
			logger.Warn("Rate limiter unavailable for %s: %v", key, err)
			return next(c)
		}

		h := c.Response().Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))

		if ctx.Reached {
			logger.Warn("Rate limit reached for %s", key)
			return response.Error(c, errors.TooManyRequests("Too many requests, please try again shortly"))
		}

		return next(c)
	}
}
