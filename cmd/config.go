package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "recon"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	runParallelFlagName      = "parallel"
	discoverPatternsFlagName = "discover-patterns"
	logFileFlagName          = "log-file"
	verboseFlagName          = "verbose"

	runParallelConfigKey = "batch.parallel"
	patternsDiscoverKey  = "patterns.discover"

	defaultReportsDir       = ".recon-reports"
	defaultRunParallel      = 1
	defaultPatternsDiscover = true

	envPrefix = "RECON"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".recon.log"
	defaultLogLevel      = "info"
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

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(patternsDiscoverKey, defaultPatternsDiscover)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		// SetConfigFile reports a missing recon.yaml as a path error.
		slog.Debug("config file not loaded", "error", err)
	}
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

// batchParallelism is the number of batch runs reconciled at once. Values
// below one fall back to the default.
func batchParallelism() int {
	parallel := viper.GetInt(runParallelConfigKey)
	if parallel < 1 {
		slog.Warn("invalid batch parallelism, using default", "value", parallel, "default", defaultRunParallel)
		return defaultRunParallel
	}

	return parallel
}

// patternDiscovery reports whether a .clt/patterns file next to the commands
// file is picked up when no patterns file is given.
func patternDiscovery() bool {
	return viper.GetBool(patternsDiscoverKey)
}

type logSettings struct {
	filename   string
	level      slog.Level
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
}

// loadLogSettings resolves the log file and level. An empty logPath falls
// back to the configured file name; verbose forces debug.
func loadLogSettings(logPath string, verbose bool) logSettings {
	settings := logSettings{
		filename:   strings.TrimSpace(logPath),
		level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		maxSize:    viper.GetInt(logMaxSizeKey),
		maxBackups: viper.GetInt(logMaxBackupsKey),
		maxAge:     viper.GetInt(logMaxAgeKey),
		compress:   viper.GetBool(logCompressKey),
	}

	if settings.filename == "" {
		settings.filename = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if settings.filename == "" {
		settings.filename = defaultLogFilename
	}

	if verbose {
		settings.level = slog.LevelDebug
	}

	return settings
}

// configureLogger installs the global slog logger writing to a rotating file.
func configureLogger(logPath string, verbose bool) {
	settings := loadLogSettings(logPath, verbose)

	logWriter := &lumberjack.Logger{
		Filename:   settings.filename,
		MaxSize:    settings.maxSize,
		MaxBackups: settings.maxBackups,
		MaxAge:     settings.maxAge,
		Compress:   settings.compress,
	}

	globalLogger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     settings.level,
	}))
	slog.SetDefault(globalLogger)
}
