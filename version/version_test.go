package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Version == "" {
		t.Errorf("Version is empty")
	}
}

func TestInfoFormats(t *testing.T) {
	info := Info{Version: "v1.0.0", Revision: "abc1234", BuiltAt: "now", GoVersion: "go1.24"}

	if s := info.String(); !strings.Contains(s, "Version: v1.0.0") || !strings.Contains(s, "Revision: abc1234") {
		t.Errorf("String() = %q", s)
	}

	out, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	var decoded Info
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded != info {
		t.Errorf("decoded = %+v, want %+v", decoded, info)
	}
}
