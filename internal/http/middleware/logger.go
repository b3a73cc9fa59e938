package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"crmapi/internal/logger"
)

// Logger logs one entry per HTTP request through the process logger.
// Fields: request_id, method, path, status, latency (ms), ts, and trace_id when the request is traced.
func Logger(loc *time.Location) fiber.Handler {
	return requestLogger(logger.Logger, loc)
}

// LoggerWithWriter is Logger with its own destination.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	l := zerolog.New(w)
	return requestLogger(func() zerolog.Logger { return l }, loc)
}

func requestLogger(base func() zerolog.Logger, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := statusOf(c, err)
		l := base()
		var evt *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = l.Error()
		case status >= fiber.StatusBadRequest:
			evt = l.Warn()
		default:
			evt = l.Info()
		}

		evt = evt.
			Str("ts", start.In(loc).Format(time.RFC3339Nano)).
			Str("request_id", RequestIDFrom(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000)
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
			evt = evt.Str("trace_id", sc.TraceID().String())
		}
		evt.Msg("request")

		return err
	}
}

// statusOf is the status the client will see. A returned error has not reached the
// error handler yet, so its code wins over the response status.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
