package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	publishNameKey        = "publish.name"
	publishTitleKey       = "publish.title"
	publishSummaryFileKey = "publish.summary_file"

	titleFlagName       = "title"
	conclusionFlagName  = "conclusion"
	summaryFlagName     = "summary"
	summaryFileFlagName = "summary-file"
)

// publishCmd represents the publish command.
var publishCmd = newPublishCmd()

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Post a pre-rendered summary as a GitHub check run",
		Long: `Post a completed check run for GITHUB_SHA in GITHUB_REPOSITORY.

The conclusion and summary default to the CONCLUSION and SUMMARY environment
variables ("neutral" and "No summary provided." when unset).`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Publish(cmd.Context(), domain.PublishArgs{
				Credentials: credentialsFromConfig(),
				Name:        viper.GetString(publishNameKey),
				Title:       viper.GetString(publishTitleKey),
				Summary:     viper.GetString(publishSummaryKey),
				SummaryFile: m.Path(viper.GetString(publishSummaryFileKey)),
				Conclusion:  m.ParseConclusion(viper.GetString(publishConclusionKey)),
			})
		},
	}

	configurePublishFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func configurePublishFlags(cmd *cobra.Command) {
	cmd.Flags().String(nameFlagName, domain.DefaultCheckName, "check run name")
	bindFlagToConfig(cmd.Flags().Lookup(nameFlagName), publishNameKey)

	cmd.Flags().String(titleFlagName, domain.DefaultCheckTitle, "check run output title")
	bindFlagToConfig(cmd.Flags().Lookup(titleFlagName), publishTitleKey)

	cmd.Flags().String(conclusionFlagName, string(m.ConclusionNeutral), "success, failure or neutral")
	bindFlagToConfig(cmd.Flags().Lookup(conclusionFlagName), publishConclusionKey)

	cmd.Flags().String(summaryFlagName, domain.DefaultSummary, "Markdown summary")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), publishSummaryKey)

	cmd.Flags().String(summaryFileFlagName, "", "read the Markdown summary from a file")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFileFlagName), publishSummaryFileKey)
}
