package mysql

import (
	"testing"

	"github.com/ncobase/yatube/data/config"
)

func TestDriverName(t *testing.T) {
	d := &driver{}
	if got := d.Name(); got != "mysql" {
		t.Errorf("Name() = %q, want %q", got, "mysql")
	}
}

func TestDialectorRejectsEmptySource(t *testing.T) {
	d := &driver{}
	if _, err := d.Dialector(&config.Database{}); err == nil {
		t.Errorf("expected error for empty source")
	}
}

func TestDialectorParsesDSN(t *testing.T) {
	d := &driver{}
	dialector, err := d.Dialector(&config.Database{Source: "user:pass@tcp(localhost:3306)/yatube"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dialector.Name() != "mysql" {
		t.Errorf("Name() = %q, want %q", dialector.Name(), "mysql")
	}
}
