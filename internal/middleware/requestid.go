package middleware

import (
	"time"

	"open-instruct/internal/dto"
	"open-instruct/internal/util"

	"github.com/gofiber/fiber/v2"
)

// Locals keys for per-request metadata.
const (
	LocalsRequestID = "request_id"
	LocalsStartTime = "start_time"
)

// RequestContext assigns every request an id and start time so handlers
// and the error handler can build response metadata. Clients may supply
// their own id via the X-Request-ID header.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = util.NewRequestID()
		}

		c.Locals(LocalsRequestID, requestID)
		c.Locals(LocalsStartTime, time.Now())
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}

// RequestID returns the id assigned by RequestContext.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsRequestID).(string); ok {
		return id
	}
	return ""
}

// ResponseMeta builds response metadata from the request context.
func ResponseMeta(c *fiber.Ctx) dto.Meta {
	start, ok := c.Locals(LocalsStartTime).(time.Time)
	if !ok {
		start = time.Now()
	}
	return dto.NewMeta(RequestID(c), start)
}
