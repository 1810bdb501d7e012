// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"inquiry_portal_backend/platform/config"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/metrics"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// Metrics backs the request instrumentation and /metrics.
	Metrics *metrics.Metrics
	// RateLimiter throttles /api/v1. Nil disables rate limiting.
	RateLimiter httpkit.RateLimiter
	// SentryEnabled installs the Sentry gin middleware.
	SentryEnabled bool
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
