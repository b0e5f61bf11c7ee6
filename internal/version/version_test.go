package version

import (
	"runtime"
	"strings"
	"testing"
)

func withVars(t *testing.T, version, dirty string) {
	t.Helper()
	oldVersion, oldDirty := Version, Dirty
	Version, Dirty = version, dirty
	t.Cleanup(func() { Version, Dirty = oldVersion, oldDirty })
}

func TestString(t *testing.T) {
	withVars(t, "1.2.3", "false")
	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q", got)
	}

	Dirty = "true"
	if got := String(); got != "1.2.3-dirty" {
		t.Errorf("String() = %q", got)
	}
}

func TestGet(t *testing.T) {
	withVars(t, "1.2.3", "true")
	info := Get()
	if info.Version != "1.2.3" || !info.Dirty {
		t.Errorf("unexpected info %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestFull(t *testing.T) {
	withVars(t, "0.4.0", "false")
	out := Full()
	if !strings.HasPrefix(out, "indexclean 0.4.0\n") {
		t.Errorf("Full() = %q", out)
	}
	if strings.Contains(out, "Dirty") {
		t.Error("clean build should not mention Dirty")
	}
}
