// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and provides the middlewares
// of the fleetmon REST API, so the config package may instantiate an
// engine without depending on gin-gonic directly.
package gin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/fleetmon/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds the client provided request ids.
const maxRequestIDLen = 128

// New creates an engine with the given middlewares. The engine
// contexts fall back to their request contexts, so the values which
// are stored by the middlewares (like the request id) are visible to
// the use cases which receive a *gin.Context as their ctx.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// RequestID reuses the X-Request-ID header of the request (or
// generates a new uuid) and stores it in the request context for the
// log package. It is also echoed in the response headers.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger writes one access log record per request with the default
// slog logger. Server errors are logged with the error level and client
// errors with the warn level.
func Logger() HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			attrs = append(attrs, slog.String("errors", errs.String()))
		}
		log.Log(c, level, "http request", attrs...)
	}
}

// Recovery converts panics into 500 responses after logging them.
func Recovery() HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error(c, "panic is recovered", slog.Any("panic", rec))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "internal server error",
		})
	})
}

// RequestObserver records the served requests, e.g., as metrics.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, d time.Duration)
}

// Metrics reports each request to obs. The matched route template is
// used as the path, so all unmatched paths are reported together.
func Metrics(obs RequestObserver) HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		obs.ObserveRequest(
			c.Request.Method, path, c.Writer.Status(), time.Since(start),
		)
	}
}
