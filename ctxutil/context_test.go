package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestUserValues(t *testing.T) {
	ctx := context.Background()
	if got := GetUserID(ctx); got != 0 {
		t.Errorf("GetUserID() = %d, want 0", got)
	}

	ctx = SetUserID(ctx, 42)
	ctx = SetUsername(ctx, "alice")

	if got := GetUserID(ctx); got != 42 {
		t.Errorf("GetUserID() = %d, want 42", got)
	}
	if got := GetUsername(ctx); got != "alice" {
		t.Errorf("GetUsername() = %q, want %q", got, "alice")
	}
}

func TestSetValueMirrorsIntoGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)

	ctx := WithGinContext(context.Background(), c)
	SetTraceID(ctx, "trace-abc")

	if v, ok := c.Get(TraceIDKey); !ok || v != "trace-abc" {
		t.Errorf("gin key %q = %v, want %q", TraceIDKey, v, "trace-abc")
	}

	// A fresh context embedding the same gin context sees the value.
	if got := GetTraceID(WithGinContext(context.Background(), c)); got != "trace-abc" {
		t.Errorf("GetTraceID() = %q, want %q", got, "trace-abc")
	}
}

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	if id == "" {
		t.Fatal("expected generated trace id")
	}

	_, again := EnsureTraceID(ctx)
	if again != id {
		t.Errorf("EnsureTraceID() = %q, want existing %q", again, id)
	}
}

func TestClientInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.7:5555"
	c.Request.Header.Set("User-Agent", "yatube-test")

	ctx := WithGinContext(context.Background(), c)
	if got := GetClientIP(ctx); got != "10.0.0.7" {
		t.Errorf("GetClientIP() = %q, want %q", got, "10.0.0.7")
	}
	if got := GetUserAgent(ctx); got != "yatube-test" {
		t.Errorf("GetUserAgent() = %q, want %q", got, "yatube-test")
	}
	if got := GetClientIP(context.Background()); got != "unknown" {
		t.Errorf("GetClientIP() = %q, want unknown", got)
	}
}

func TestDetach(t *testing.T) {
	parent, cancel := context.WithCancel(SetTraceID(context.Background(), "t1"))
	cancel()

	ctx, stop := Detach(parent, 0)
	defer stop()

	if ctx.Err() != nil {
		t.Errorf("detached context should not be cancelled, got %v", ctx.Err())
	}
	if got := GetTraceID(ctx); got != "t1" {
		t.Errorf("GetTraceID() = %q, want %q", got, "t1")
	}
	deadline, ok := ctx.Deadline()
	if !ok || time.Until(deadline) > DefaultAsyncTimeout {
		t.Errorf("expected default deadline, got %v %v", deadline, ok)
	}
}
