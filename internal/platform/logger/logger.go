// Package logger builds the process logger and the gin request logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// EnvDevelopment selects the human-readable text formatter.
	EnvDevelopment = "development"

	ctxKey = "logger"
)

// New creates a configured logrus logger.
// Development gets full-timestamp text output, every other environment gets JSON.
// An unparsable level falls back to info.
func New(env, level string) *logrus.Logger {
	return NewWithOutput(env, level, os.Stdout)
}

// NewWithOutput is New writing to w.
func NewWithOutput(env, level string, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if env == EnvDevelopment {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// GinMiddleware logs one line per request and exposes a request-scoped entry via FromGin.
func GinMiddleware(base logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := base.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"remote_addr": c.ClientIP(),
		})
		c.Set(ctxKey, entry)

		c.Next()

		fields := logrus.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		e := entry.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			e.Error("request completed")
		case status >= 400:
			e.Warn("request completed")
		default:
			e.Info("request completed")
		}
	}
}

// FromGin returns the request-scoped logger, or the standard logger when the middleware is absent.
func FromGin(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(ctxKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return logrus.StandardLogger()
}
