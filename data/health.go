package data

import (
	"context"
	"time"
)

// Health checks every connection of the data layer and reports each one
// with its response time. The second result is false when any check failed.
func (d *Data) Health(ctx context.Context) (map[string]any, bool) {
	services := make(map[string]any)
	overallHealthy := true

	if healthy := d.checkHealth(ctx, services, "database", d.pingDatabase); !healthy {
		overallHealthy = false
	}

	if d.Redis != nil {
		if healthy := d.checkHealth(ctx, services, "redis", d.pingRedis); !healthy {
			overallHealthy = false
		}
	}

	health := map[string]any{
		"timestamp": time.Now(),
		"services":  services,
		"status":    "healthy",
	}
	if !overallHealthy {
		health["status"] = "degraded"
	}
	return health, overallHealthy
}

func (d *Data) checkHealth(ctx context.Context, services map[string]any, name string, ping func(context.Context) error) bool {
	start := time.Now()
	err := ping(ctx)
	duration := time.Since(start)

	healthy := err == nil
	services[name] = map[string]any{
		"healthy":     healthy,
		"response_ms": duration.Milliseconds(),
		"error":       getErrorString(err),
	}
	if !healthy {
		d.logger.Warn(ctx, "health check failed", "service", name, "error", err)
	}
	return healthy
}

func getErrorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
