package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		LoggerMiddleware(output io.Writer, timeZone string) fiber.Handler
		LimiterMiddleware(max int) fiber.Handler
	}

	middleware struct {
		allowedOrigins string
	}
)

func NewMiddleware(allowedOrigins string) Middleware {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return &middleware{allowedOrigins: allowedOrigins}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowedOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

func (m *middleware) LoggerMiddleware(output io.Writer, timeZone string) fiber.Handler {
	if timeZone == "" {
		timeZone = "Local"
	}
	return logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timeZone,
		Output:     output,
	})
}

// LimiterMiddleware allows max requests per second per client. A max of zero
// disables limiting.
func (m *middleware) LimiterMiddleware(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return max <= 0
		},
		Max:        max,
		Expiration: 1 * time.Second,
	})
}
