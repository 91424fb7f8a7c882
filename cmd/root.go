// Package cmd provides the root command and CLI setup for robotreport.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	"github.com/sinesipho-jacobs/test-workflow/internal/controller"
	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

var resultAdapter adapter.RobotResultAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var mergeTool adapter.MergeToolAdapter
var checkRunAdapter adapter.CheckRunAdapter
var uploader adapter.ArtifactUploader
var renderer domain.Renderer
var merger domain.Merger
var publisher domain.Publisher
var workflow domain.Workflow
var ui controller.UI

// reportOutputFlag is a root-level flag naming the Markdown report file.
var reportOutputFlag string

// verboseFlag switches logging to debug.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	resultAdapter = adapter.NewLocalRobotResultAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	mergeTool = adapter.NewLocalMergeToolAdapter(
		viper.GetString(mergeToolKey),
		time.Duration(viper.GetInt64(mergeTimeoutKey))*time.Second,
	)
	checkRunAdapter = adapter.NewGitHubCheckRunAdapter(adapter.WithBaseURL(viper.GetString(githubAPIURLKey)))
	uploader = adapter.NewS3ArtifactUploader()
	renderer = domain.NewRenderer(fsAdapter)
	merger = domain.NewMerger(resultAdapter, fsAdapter, mergeTool, reportStore)
	publisher = domain.NewPublisher(checkRunAdapter)
	workflow = domain.NewWorkflow(
		resultAdapter,
		fsAdapter,
		reportStore,
		uploader,
		mergeTool,
		ui,
		renderer,
		merger,
		publisher,
	)
}

const rootLongDescription = `robotreport turns Robot Framework output.xml files into a Markdown
summary, merges the results of parallel runs with rebot and posts the outcome
as a GitHub check run.

GitHub settings are read from the usual Actions variables: GITHUB_TOKEN,
GITHUB_REPOSITORY, GITHUB_SHA, GITHUB_JOB (or JOB_NAME) and GITHUB_STEP_SUMMARY.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "robotreport",
		Short:         "Robot Framework result reporting for CI",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportOutputFlag, outputFlagName, "o",
			defaultReportFile,
			"Markdown report file to append to",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// credentialsFromConfig reads the GitHub check-run credentials.
func credentialsFromConfig() domain.Credentials {
	return domain.Credentials{
		Token:      viper.GetString(githubTokenKey),
		Repository: viper.GetString(githubRepositoryKey),
		Commit:     viper.GetString(githubSHAKey),
	}
}
