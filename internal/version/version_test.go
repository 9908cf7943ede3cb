package version

import (
	"runtime/debug"
	"testing"
)

func TestMerge(t *testing.T) {
	defaults := Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}
	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
	}

	tests := []struct {
		name string
		info Info
		bi   debug.BuildInfo
		want Info
	}{
		{
			name: "go install build",
			info: defaults,
			bi:   debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}, Settings: vcs},
			want: Info{Version: "v1.2.0", Commit: "0123456789ab", BuildDate: "2026-10-01T12:00:00Z"},
		},
		{
			name: "local build keeps dev",
			info: defaults,
			bi:   debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: defaults,
		},
		{
			name: "ldflags win",
			info: Info{Version: "v2.0.0", Commit: "abc123", BuildDate: "2026-09-30"},
			bi:   debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}, Settings: vcs},
			want: Info{Version: "v2.0.0", Commit: "abc123", BuildDate: "2026-09-30"},
		},
		{
			name: "short revision kept",
			info: defaults,
			bi:   debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}},
			want: Info{Version: "dev", Commit: "abc", BuildDate: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.merge(&tt.bi); got != tt.want {
				t.Errorf("merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.0.0", Commit: "abc", BuildDate: "2026-10-01"}
	if got, want := info.String(), "v1.0.0 (commit: abc, built: 2026-10-01)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
