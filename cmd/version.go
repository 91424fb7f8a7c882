package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	develVersion     = "(devel)"
	unknownVersion   = "unknown"
	shortRevisionLen = 12
)

// version is stamped by release builds with -ldflags "-X ...cmd.version=v1.2.3".
var version string

// buildDetails is what robotreport version reports.
type buildDetails struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

// readBuildDetails prefers the stamped version over module info. A local
// build reports its VCS revision instead of "(devel)".
func readBuildDetails(stamped string, info *debug.BuildInfo) buildDetails {
	details := buildDetails{Version: stamped}
	if info == nil {
		if details.Version == "" {
			details.Version = unknownVersion
		}

		return details
	}

	details.GoVersion = info.GoVersion

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			details.Revision = setting.Value
			if len(details.Revision) > shortRevisionLen {
				details.Revision = details.Revision[:shortRevisionLen]
			}
		case "vcs.modified":
			details.Modified = setting.Value == "true"
		}
	}

	if details.Version == "" {
		details.Version = info.Main.Version
	}

	if details.Version == "" || details.Version == develVersion {
		details.Version = "dev"
		if details.Revision == "" {
			details.Version = unknownVersion
		}
	}

	return details
}

func (d buildDetails) String() string {
	out := "robotreport " + d.Version
	if d.Revision != "" {
		out += " (" + d.Revision
		if d.Modified {
			out += ", modified"
		}

		out += ")"
	}

	if d.GoVersion != "" {
		out += " built with " + d.GoVersion
	}

	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the robotreport version",
		Long: `Print the robotreport release, the VCS revision it was built from and the Go
toolchain that built it.`,
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			cmd.Println(readBuildDetails(version, info))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
