package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "robotreport"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	verboseFlagName = "verbose"

	reportCategoryKey      = "report.category"
	reportXMLKey           = "report.xml"
	reportXLSXKey          = "report.xlsx"
	reportMetricsFileKey   = "report.metrics_file"
	reportPublishKey       = "report.publish"
	reportFailOnPublishKey = "report.fail_on_publish_error"

	mergeBaseDirKey    = "merge.base_dir"
	mergePatternKey    = "merge.pattern"
	mergeOutputDirKey  = "merge.output_dir"
	mergeNameKey       = "merge.name"
	mergeNoStatusRCKey = "merge.nostatusrc"
	mergeToolKey       = "merge.tool"
	mergeTimeoutKey    = "merge.timeout"

	uploadBucketKey   = "upload.bucket"
	uploadPrefixKey   = "upload.prefix"
	uploadRegionKey   = "upload.region"
	uploadEndpointKey = "upload.endpoint"
	uploadParallelKey = "upload.parallel"

	// Keys fed only by the CI environment; never written by init.
	githubTokenKey       = "github.token"
	githubRepositoryKey  = "github.repository"
	githubSHAKey         = "github.sha"
	githubJobKey         = "github.job"
	githubStepSummaryKey = "github.step_summary"
	githubAPIURLKey      = "github.api_url"
	publishConclusionKey = "publish.conclusion"
	publishSummaryKey    = "publish.summary"

	defaultReportFile    = "report.md"
	defaultMergeTimeout  = 10 * time.Minute
	defaultUploadRegion  = "us-east-1"
	defaultUploadThreads = 4

	envPrefix = "ROBOTREPORT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".robotreport.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())
	bindCIEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// setDefaults registers every value that robotreport init writes out.
func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(outputFlagName, defaultReportFile)

	v.SetDefault(reportCategoryKey, "")
	v.SetDefault(reportXMLKey, "")
	v.SetDefault(reportXLSXKey, "")
	v.SetDefault(reportMetricsFileKey, "")
	v.SetDefault(reportPublishKey, false)
	v.SetDefault(reportFailOnPublishKey, false)

	v.SetDefault(mergeBaseDirKey, domain.DefaultResultsBaseDir)
	v.SetDefault(mergePatternKey, domain.DefaultResultsPattern)
	v.SetDefault(mergeOutputDirKey, domain.DefaultMergeOutputDir)
	v.SetDefault(mergeNameKey, domain.DefaultMergeRunName)
	v.SetDefault(mergeNoStatusRCKey, false)
	v.SetDefault(mergeToolKey, adapter.DefaultMergeTool)
	v.SetDefault(mergeTimeoutKey, int64(defaultMergeTimeout.Seconds()))

	v.SetDefault(uploadBucketKey, "")
	v.SetDefault(uploadPrefixKey, "")
	v.SetDefault(uploadRegionKey, defaultUploadRegion)
	v.SetDefault(uploadEndpointKey, "")
	v.SetDefault(uploadParallelKey, defaultUploadThreads)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// bindCIEnv maps the unprefixed variables set by GitHub Actions.
func bindCIEnv(v *viper.Viper) {
	bindings := map[string][]string{
		githubTokenKey:       {"GITHUB_TOKEN"},
		githubRepositoryKey:  {"GITHUB_REPOSITORY"},
		githubSHAKey:         {"GITHUB_SHA"},
		githubJobKey:         {"JOB_NAME", "GITHUB_JOB"},
		githubStepSummaryKey: {"GITHUB_STEP_SUMMARY"},
		githubAPIURLKey:      {"GITHUB_API_URL"},
		publishConclusionKey: {"CONCLUSION"},
		publishSummaryKey:    {"SUMMARY"},
	}

	for key, envs := range bindings {
		input := append([]string{key}, envs...)
		_ = v.BindEnv(input...)
	}

	v.SetDefault(githubAPIURLKey, adapter.DefaultGitHubAPIURL)
	v.SetDefault(githubJobKey, domain.DefaultJobName)
	v.SetDefault(publishConclusionKey, string(m.ConclusionNeutral))
	v.SetDefault(publishSummaryKey, domain.DefaultSummary)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
