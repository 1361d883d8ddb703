package ctxutil

import (
	"context"
	"net"
	"strings"
)

const (
	clientIPKey  = "client_ip"
	userAgentKey = "user_agent"
)

// SetClientIP sets client IP to context.Context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return SetValue(ctx, clientIPKey, ip)
}

// GetClientIP gets client IP from context.Context
func GetClientIP(ctx context.Context) string {
	if ip, ok := GetValue(ctx, clientIPKey).(string); ok && ip != "" {
		return ip
	}

	if ginCtx, ok := GetGinContext(ctx); ok {
		if ip := ginCtx.ClientIP(); ip != "" {
			return ip
		}
		if ginCtx.Request != nil {
			return getIPFromAddr(ginCtx.Request.RemoteAddr)
		}
	}

	return "unknown"
}

// SetUserAgent sets user agent to context.Context
func SetUserAgent(ctx context.Context, userAgent string) context.Context {
	return SetValue(ctx, userAgentKey, userAgent)
}

// GetUserAgent gets user agent from context.Context
func GetUserAgent(ctx context.Context) string {
	if ua, ok := GetValue(ctx, userAgentKey).(string); ok && ua != "" {
		return ua
	}

	if ginCtx, ok := GetGinContext(ctx); ok {
		if userAgent := ginCtx.GetHeader("User-Agent"); userAgent != "" {
			return userAgent
		}
	}

	return "unknown"
}

// getIPFromAddr strips the port from a remote address
func getIPFromAddr(addr string) string {
	if host, _, err := net.SplitHostPort(strings.TrimSpace(addr)); err == nil {
		return host
	}
	return addr
}
