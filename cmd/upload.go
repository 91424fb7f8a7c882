package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
)

const (
	bucketFlagName   = "bucket"
	prefixFlagName   = "prefix"
	regionFlagName   = "region"
	endpointFlagName = "endpoint"
	parallelFlagName = "parallel"
)

// uploadCmd represents the upload command.
var uploadCmd = newUploadCmd()

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file...>",
		Short: "Upload report artifacts to S3",
		Long: `Upload report artifacts (report.md, merged output, workbooks) to an S3 bucket.
Objects are stored as <prefix>/<file name> and tagged with the repository and
commit when those are known. AWS credentials come from the standard AWS
environment and shared config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := viper.GetInt(uploadParallelKey)
			if threads < 0 {
				return fmt.Errorf("invalid --%s %d", parallelFlagName, threads)
			}

			_, err := workflow.Upload(cmd.Context(), domain.UploadArgs{
				Files:    parsePaths(args),
				Region:   viper.GetString(uploadRegionKey),
				Endpoint: viper.GetString(uploadEndpointKey),
				Bucket:   viper.GetString(uploadBucketKey),
				Prefix:   viper.GetString(uploadPrefixKey),
				Threads:  uint(threads),
				Metadata: uploadMetadata(),
			})

			return err
		},
	}

	configureUploadFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func configureUploadFlags(cmd *cobra.Command) {
	cmd.Flags().String(bucketFlagName, "", "destination bucket")
	bindFlagToConfig(cmd.Flags().Lookup(bucketFlagName), uploadBucketKey)

	cmd.Flags().String(prefixFlagName, "", "key prefix")
	bindFlagToConfig(cmd.Flags().Lookup(prefixFlagName), uploadPrefixKey)

	cmd.Flags().String(regionFlagName, defaultUploadRegion, "bucket region")
	bindFlagToConfig(cmd.Flags().Lookup(regionFlagName), uploadRegionKey)

	cmd.Flags().String(endpointFlagName, "", "S3 compatible endpoint URL")
	bindFlagToConfig(cmd.Flags().Lookup(endpointFlagName), uploadEndpointKey)

	cmd.Flags().IntP(parallelFlagName, "p", defaultUploadThreads, "number of concurrent uploads")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), uploadParallelKey)
}

func uploadMetadata() map[string]string {
	metadata := map[string]string{}

	if repo := viper.GetString(githubRepositoryKey); repo != "" {
		metadata["repository"] = repo
	}

	if sha := viper.GetString(githubSHAKey); sha != "" {
		metadata["commit"] = sha
	}

	return metadata
}
