package cmd

import (
	"github.com/spf13/cobra"

	"iconlist/internal/listing"
	"iconlist/internal/pipeline"
	"iconlist/internal/sink"
	"iconlist/pkg/utils"
)

func runRefresh(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	if url == "" {
		url = cfg.ListingURL
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.OutputPath
	}

	publisher, err := getPublisher(cmd)
	if err != nil {
		return reportFailure(cmd, err, "refresh")
	}

	if isVerbose(cmd) {
		cmd.PrintErrf("Fetching listing from: %s\n", url)
	}

	p := pipeline.New(listing.NewHTTPFetcher(cfg.UserAgent, cfg.Timeout), &sink.LocalSink{})
	if publisher != nil {
		p.WithPublisher(publisher)
	}

	result, err := p.Run(cmd.Context(), pipeline.Options{
		IconSet:    "heroicons",
		URL:        url,
		OutputPath: output,
	})
	if err != nil {
		return reportFailure(cmd, err, "refresh")
	}

	if isJSON(cmd) {
		return utils.PrintJSON(cmd.OutOrStdout(), result)
	}
	if err := pipeline.Report(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if result.Published != nil && isVerbose(cmd) {
		cmd.PrintErrf("Published to s3://%s/%s\n", result.Published.BucketName, result.Published.Key)
	}
	return nil
}

// reportFailure prints err as JSON when --json is set and returns it so the
// process exits non-zero.
func reportFailure(cmd *cobra.Command, err error, command string) error {
	if isJSON(cmd) {
		utils.PrintError(cmd.ErrOrStderr(), err, command)
		return &ExitError{Code: 1, Err: err}
	}
	return err
}

func init() {
	rootCmd.Flags().String("url", "", "Listing URL (default: ICONLIST_URL or the Heroicons outline listing)")
	rootCmd.Flags().StringP("output", "o", "", "Output file (default: ICONLIST_OUTPUT or heroicon-list.txt)")
}
