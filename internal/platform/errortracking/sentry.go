// Package errortracking reports server-side failures to Sentry.
package errortracking

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Init configures the global Sentry hub. An empty dsn leaves reporting off and
// returns a no-op flush.
func Init(dsn, environment, release string) (func(), error) {
	if strings.TrimSpace(dsn) == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return func() {}, fmt.Errorf("sentry initialization failed: %w", err)
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError sends err with extra context through the current hub.
func CaptureError(hub *sentry.Hub, err error, extra map[string]interface{}) {
	if hub == nil || err == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range extra {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}

// Middleware starts a transaction per request and captures errors that
// handlers attached with c.Error once the response is a server error.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub()
		if hub == nil || hub.Client() == nil {
			c.Next()
			return
		}
		hub = hub.Clone()
		transaction := sentry.StartTransaction(
			c.Request.Context(),
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			sentry.ContinueFromRequest(c.Request),
		)
		hub.Scope().SetTag("http.method", c.Request.Method)
		hub.Scope().SetContext("Request", map[string]interface{}{
			"Method":  c.Request.Method,
			"URL":     c.Request.URL.String(),
			"Headers": safeHeaders(c.Request.Header),
		})
		c.Request = c.Request.WithContext(sentry.SetHubOnContext(transaction.Context(), hub))

		c.Next()

		status := c.Writer.Status()
		transaction.Status = sentry.HTTPtoSpanStatus(status)
		transaction.Finish()
		if status < http.StatusInternalServerError {
			return
		}
		for _, ginErr := range c.Errors {
			CaptureError(hub, ginErr.Err, map[string]interface{}{
				"route":  c.FullPath(),
				"status": status,
			})
		}
	}
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{}, len(h))
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
			continue
		}
		safe[k] = v
	}
	return safe
}
