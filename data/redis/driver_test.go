package redis

import (
	"context"
	"testing"
)

func TestDriverName(t *testing.T) {
	d := &driver{}
	if got := d.Name(); got != "redis" {
		t.Errorf("Name() = %q, want %q", got, "redis")
	}
}

func TestConnectRejectsInvalidConfig(t *testing.T) {
	d := &driver{}
	if _, err := d.Connect(context.Background(), "not-a-config"); err == nil {
		t.Errorf("expected error for invalid configuration type")
	}
}

func TestCloseRejectsInvalidConnection(t *testing.T) {
	d := &driver{}
	if err := d.Close("not-a-client"); err == nil {
		t.Errorf("expected error for invalid connection type")
	}
}
