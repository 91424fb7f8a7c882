package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "robotreport "))
}

func TestVersionCmd_RejectsArguments(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestReadBuildDetails(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name    string
		stamped string
		info    *debug.BuildInfo
		want    string
	}{
		{
			name: "no build info",
			want: "robotreport unknown",
		},
		{
			name:    "stamped without build info",
			stamped: "v1.4.0",
			want:    "robotreport v1.4.0",
		},
		{
			name: "module version",
			info: &debug.BuildInfo{GoVersion: "go1.24.0", Main: debug.Module{Version: "v1.2.3"}},
			want: "robotreport v1.2.3 built with go1.24.0",
		},
		{
			name:    "stamped version wins over module version",
			stamped: "v2.0.0",
			info:    &debug.BuildInfo{GoVersion: "go1.24.0", Main: debug.Module{Version: "v1.2.3"}},
			want:    "robotreport v2.0.0 built with go1.24.0",
		},
		{
			name: "local build reports its revision",
			info: &debug.BuildInfo{GoVersion: "go1.24.0", Main: debug.Module{Version: "(devel)"}, Settings: vcs},
			want: "robotreport dev (0123456789ab, modified) built with go1.24.0",
		},
		{
			name: "local build without vcs",
			info: &debug.BuildInfo{GoVersion: "go1.24.0", Main: debug.Module{Version: "(devel)"}},
			want: "robotreport unknown built with go1.24.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readBuildDetails(tt.stamped, tt.info).String())
		})
	}
}
