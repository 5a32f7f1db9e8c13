package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/jnistage/internal/config"
	"github.com/oshokin/jnistage/internal/logger"
	"github.com/oshokin/jnistage/internal/service/stager"
	"github.com/oshokin/jnistage/internal/version"
)

var errUnknownLogLevel = errors.New("unknown log level")

var (
	// configPath to the worktree settings YAML file.
	configPath string
	// worktree overrides the worktree root from the settings.
	worktree string
	// buildConfig overrides the build configuration from the settings.
	buildConfig string
	// logLevel is the minimum level of printed messages.
	logLevel string

	// rootCmd represents the base command for staging JNI libraries.
	rootCmd = &cobra.Command{
		Use:   stager.BinaryName,
		Short: "Copy the JNI libraries and their dependencies as resources.",
		Long: `Collects libqi, the qimessaging JNI bindings and the Boost libraries they
depend on, and stages them into the native/ resource folder of the
qimessaging Java project (native-android/ for Android build configurations).

The native projects must already be built. On hosts supporting symlinks the
resource folder links to the build outputs, otherwise the files are copied.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("%w: %s", errUnknownLogLevel, logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &stager.Options{
				ConfigPath:  configPath,
				Worktree:    worktree,
				BuildConfig: buildConfig,
			}

			return stager.Run(ctx, options)
		},
	}
)

// Execute runs the jnistage CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to worktree settings file")
	flags.StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&worktree, "worktree", "w", "", "worktree root, overrides the settings file")
	rootCmd.Flags().StringVarP(&buildConfig, "build-config", "b", "", "build configuration, overrides the settings file")
}
