package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis rate-limits per client IP, backed by the shared
// Redis instance so the limit holds across replicas. Generous enough for
// normal roster browsing; mainly a brake on credential stuffing.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage: fiberredis.NewFromConnection(rdb),

		// sliding window
		Max:               30,
		Expiration:        30 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
