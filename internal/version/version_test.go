package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = version, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "release", version: "1.0.0"},
		{name: "prerelease", version: "1.1.0-beta.1"},
		{name: "build metadata", version: "1.0.0+12.abc1234"},
		{name: "garbage", version: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, "unknown", "unknown")
			err := ValidateVersion()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetBaseVersionAndMetadata(t *testing.T) {
	withBuildInfo(t, "1.2.3-rc.1+45.deadbee", "unknown", "unknown")

	if got := GetBaseVersion(); got != "1.2.3" {
		t.Errorf("GetBaseVersion() = %q, want %q", got, "1.2.3")
	}
	if got := GetBuildMetadata(); got != "45.deadbee" {
		t.Errorf("GetBuildMetadata() = %q, want %q", got, "45.deadbee")
	}
	if !IsPrerelease() {
		t.Error("IsPrerelease() = false, want true")
	}
}

func TestGetFormattedVersion(t *testing.T) {
	withBuildInfo(t, "1.0.0", "0123456789abcdef", "2026-10-19")

	got := GetFormattedVersion()
	want := "uconv v1.0.0, commit 0123456, built 2026-10-19"
	if got != want {
		t.Errorf("GetFormattedVersion() = %q, want %q", got, want)
	}
}

func TestGetFormattedVersion_Development(t *testing.T) {
	withBuildInfo(t, "1.0.0", "unknown", "unknown")

	if got := GetFormattedVersion(); got != "uconv v1.0.0" {
		t.Errorf("GetFormattedVersion() = %q", got)
	}
	if !IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
}

func TestGetFormattedVersion_Invalid(t *testing.T) {
	withBuildInfo(t, "bogus", "unknown", "unknown")

	if got := GetFormattedVersion(); !strings.Contains(got, "invalid version") {
		t.Errorf("GetFormattedVersion() = %q", got)
	}
	if _, err := GetInfo(); err == nil {
		t.Error("GetInfo() should fail for an invalid version")
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withBuildInfo(t, "1.0.0+7.abc", "abc", "2026-10-19")

	got := GetDetailedVersion()
	for _, want := range []string{
		"uconv v1.0.0+7.abc",
		"Base Version: 1.0.0 (stable)",
		"Git Commit: abc",
		"Built: Mon, 19 Oct 2026 00:00:00 UTC",
		"Build Metadata: 7.abc",
		"Go Version:",
		"Platform:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GetDetailedVersion() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Development Build") {
		t.Errorf("release build reported as development:\n%s", got)
	}
}

func TestGetDetailedVersion_DevelopmentPrerelease(t *testing.T) {
	withBuildInfo(t, "1.1.0-beta.2", "unknown", "unknown")

	got := GetDetailedVersion()
	for _, want := range []string{"Base Version: 1.1.0 (prerelease)", "Development Build: yes"} {
		if !strings.Contains(got, want) {
			t.Errorf("GetDetailedVersion() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Built:") {
		t.Errorf("unknown build date should not be parsed:\n%s", got)
	}
}

func TestGetBuildTime(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abc", "2026-10-19")

	bt, err := GetBuildTime()
	if err != nil {
		t.Fatalf("GetBuildTime() error: %v", err)
	}
	if bt.Year() != 2026 || bt.Month() != 10 || bt.Day() != 19 {
		t.Errorf("GetBuildTime() = %v", bt)
	}

	BuildDate = "unknown"
	if _, err := GetBuildTime(); err == nil {
		t.Error("expected error when build date is unknown")
	}
}
