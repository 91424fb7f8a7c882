package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	categoryFlagName      = "category"
	xmlFlagName           = "xml"
	xlsxFlagName          = "xlsx"
	metricsFileFlagName   = "metrics-file"
	publishFlagName       = "publish"
	failOnPublishFlagName = "fail-on-publish-error"
)

const reportLongDescription = `Parse one or more Robot Framework result files and append a Markdown
summary to the report file (default: report.md).

Arguments may be output.xml files or directories; directories are searched
recursively for output.xml. Without arguments ./output.xml is used.

The category names the report section. "api" and "web" expand to
"API Tests" and "Web Tests"; anything else is used as given.

When GITHUB_STEP_SUMMARY is set the new section is mirrored into it.`

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [output.xml|dir...]",
		Short: "Summarize Robot Framework results as Markdown",
		Long:  reportLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := parsePaths(args)
			if len(sources) == 0 {
				sources = []m.Path{domain.ResultFileName}
			}

			_, err := workflow.Report(cmd.Context(), domain.ReportArgs{
				Sources:            sources,
				Category:           m.CategoryFromName(viper.GetString(reportCategoryKey)),
				Output:             m.Path(viper.GetString(outputFlagName)),
				StepSummary:        m.Path(viper.GetString(githubStepSummaryKey)),
				MachineOutput:      m.Path(viper.GetString(reportXMLKey)),
				XLSX:               m.Path(viper.GetString(reportXLSXKey)),
				MetricsFile:        m.Path(viper.GetString(reportMetricsFileKey)),
				Publish:            viper.GetBool(reportPublishKey),
				FailOnPublishError: viper.GetBool(reportFailOnPublishKey),
				Credentials:        credentialsFromConfig(),
				JobName:            viper.GetString(githubJobKey),
			})

			return err
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(categoryFlagName, "c", "", `report section, e.g. "api" or "web"`)
	bindFlagToConfig(cmd.Flags().Lookup(categoryFlagName), reportCategoryKey)

	cmd.Flags().String(xmlFlagName, "", "also write a normalized per-test XML file")
	bindFlagToConfig(cmd.Flags().Lookup(xmlFlagName), reportXMLKey)

	cmd.Flags().String(xlsxFlagName, "", "also write an XLSX workbook")
	bindFlagToConfig(cmd.Flags().Lookup(xlsxFlagName), reportXLSXKey)

	cmd.Flags().String(metricsFileFlagName, "", "also write Prometheus textfile metrics")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), reportMetricsFileKey)

	cmd.Flags().Bool(publishFlagName, false, "post the report as a GitHub check run")
	bindFlagToConfig(cmd.Flags().Lookup(publishFlagName), reportPublishKey)

	cmd.Flags().Bool(failOnPublishFlagName, false, "exit non-zero when the check run cannot be posted")
	bindFlagToConfig(cmd.Flags().Lookup(failOnPublishFlagName), reportFailOnPublishKey)
}
