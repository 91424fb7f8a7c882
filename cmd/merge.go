package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	baseDirFlagName    = "base-dir"
	patternFlagName    = "pattern"
	outputDirFlagName  = "output-dir"
	nameFlagName       = "name"
	noStatusRCFlagName = "nostatusrc"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge parallel Robot Framework runs with rebot",
		Long: `Find every robot-test-results-* directory under the base directory, collect
the valid output.xml files inside them and merge them with rebot into a single
output.xml, log.html and report.html.

Exits non-zero when no result directory, no valid result file or no file with
usable timestamps is found. rebot itself exits with the number of failed tests,
so a merge of runs with failures also exits non-zero unless --nostatusrc is set.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Merge(cmd.Context(), domain.MergeArgs{
				BaseDir:   m.Path(viper.GetString(mergeBaseDirKey)),
				Pattern:   viper.GetString(mergePatternKey),
				OutputDir: m.Path(viper.GetString(mergeOutputDirKey)),
				RunName:   viper.GetString(mergeNameKey),

				NoStatusRC: viper.GetBool(mergeNoStatusRCKey),
			})

			return err
		},
	}

	configureMergeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func configureMergeFlags(cmd *cobra.Command) {
	cmd.Flags().String(baseDirFlagName, domain.DefaultResultsBaseDir, "directory holding the per-run result directories")
	bindFlagToConfig(cmd.Flags().Lookup(baseDirFlagName), mergeBaseDirKey)

	cmd.Flags().String(patternFlagName, domain.DefaultResultsPattern, "glob matching the per-run result directories")
	bindFlagToConfig(cmd.Flags().Lookup(patternFlagName), mergePatternKey)

	cmd.Flags().String(outputDirFlagName, domain.DefaultMergeOutputDir, "directory receiving the merged output")
	bindFlagToConfig(cmd.Flags().Lookup(outputDirFlagName), mergeOutputDirKey)

	cmd.Flags().String(nameFlagName, domain.DefaultMergeRunName, "name of the merged top-level suite")
	bindFlagToConfig(cmd.Flags().Lookup(nameFlagName), mergeNameKey)

	cmd.Flags().Bool(noStatusRCFlagName, false, "pass --nostatusrc to rebot so failed tests do not fail the merge")
	bindFlagToConfig(cmd.Flags().Lookup(noStatusRCFlagName), mergeNoStatusRCKey)
}
