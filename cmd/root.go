package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"iconlist/config"
	"iconlist/internal/pipeline"
	"iconlist/internal/s3client"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "iconlist",
	Short: "Refresh local icon name lists from remote listings",
	Long: `iconlist fetches the Heroicons outline directory listing and writes every
file name it contains to heroicon-list.txt, one per line.

Run without arguments to refresh the Heroicons list. Use "sets" to refresh every
icon set in the manifest and "check" to validate icon names from an editor hook.
Configuration is loaded from .env file or environment variables`,
	Example: `  # Refresh heroicon-list.txt
  iconlist

  # Refresh and upload the list to S3
  iconlist --publish --bucket my-assets

  # Print the result as JSON
  iconlist --json`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runRefresh,
}

// Execute runs the command tree with the loaded configuration.
func Execute(ctx context.Context, config *config.Config) error {
	cfg = config
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(handleError),
	)
}

// ExitError carries a process exit code. Its message has already been
// reported by the command that returned it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Override bucket name from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().Bool("publish", false, "Also upload written lists to S3")
	rootCmd.PersistentFlags().String("manifest", "", "Icon set manifest (default: built-in, or ICONLIST_MANIFEST)")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if isVerbose(cmd) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)
	return nil
}

func getBucketName(cmd *cobra.Command) string {
	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket != "" {
		return bucket
	}
	return cfg.BucketName
}

func getManifestPath(cmd *cobra.Command) string {
	manifest, _ := cmd.Flags().GetString("manifest")
	if manifest != "" {
		return manifest
	}
	return cfg.ManifestPath
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func isJSON(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}

// getPublisher returns nil unless --publish was given.
func getPublisher(cmd *cobra.Command) (pipeline.Publisher, error) {
	publish, _ := cmd.Flags().GetBool("publish")
	if !publish {
		return nil, nil
	}
	publishCfg := *cfg
	publishCfg.BucketName = getBucketName(cmd)
	client, err := s3client.New(&publishCfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func joinDir(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
