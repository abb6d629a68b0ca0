package wire

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"
	"github.com/spf13/afero"

	"github.com/sevigo/branchsync/internal/app"
	"github.com/sevigo/branchsync/internal/config"
	"github.com/sevigo/branchsync/internal/gitutil"
	"github.com/sevigo/branchsync/internal/logger"
	"github.com/sevigo/branchsync/internal/repomanager"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	repomanager.New,
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	provideGitRunner,
	provideFs,
)

const logFile = "branchsync.log"

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.LoggerConfig
}

// provideLogWriter opens the configured log sink. The cleanup closes the log
// file when one was opened.
func provideLogWriter(cfg *config.Config) (io.Writer, func(), error) {
	switch cfg.LoggerConfig.Output {
	case "stdout":
		return os.Stdout, func() {}, nil
	case "file":
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	default:
		// stdout carries command output, so logs go to stderr.
		return os.Stderr, func() {}, nil
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideGitRunner(cfg *config.Config, logger *slog.Logger) gitutil.Runner {
	return gitutil.NewClient(logger, cfg.GitBinary)
}

func provideFs() afero.Fs {
	return afero.NewOsFs()
}
