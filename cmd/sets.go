package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iconlist/internal/iconsets"
	"iconlist/internal/listing"
	"iconlist/internal/models"
	"iconlist/internal/pipeline"
	"iconlist/internal/sink"
	"iconlist/pkg/utils"
)

var setsCmd = &cobra.Command{
	Use:   "sets [name...]",
	Short: "Refresh icon lists for every configured icon set",
	Long: `Refresh icon lists for the icon sets described in the manifest.

Each set is fetched, filtered to icon names, sorted and written to its own
list file. A set that fails or yields no names is reported and the remaining
sets are still refreshed; the command exits non-zero if any set failed.

The built-in manifest covers Heroicons, Lucide and FontAwesome. Use --manifest
or ICONLIST_MANIFEST to point at a YAML file with your own sets.`,
	Example: `  # Refresh every set
  iconlist sets

  # Refresh only Lucide, writing into ./lists
  iconlist sets lucide --dir lists

  # Refresh and upload each list to S3
  iconlist sets --publish --bucket my-assets`,
	RunE: runSets,
}

func runSets(cmd *cobra.Command, args []string) error {
	manifest, err := iconsets.Load(getManifestPath(cmd))
	if err != nil {
		return reportFailure(cmd, err, "sets")
	}
	sets, err := manifest.Select(args)
	if err != nil {
		return reportFailure(cmd, err, "sets")
	}

	publisher, err := getPublisher(cmd)
	if err != nil {
		return reportFailure(cmd, err, "sets")
	}

	dir, _ := cmd.Flags().GetString("dir")
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	quiet := isJSON(cmd)
	say := func(format string, a ...any) {
		if !quiet {
			fmt.Fprintf(out, format, a...)
		}
	}

	say("Refreshing icon lists...\n\n")

	var summary models.SetsResult
	for _, set := range sets {
		say("Fetching %s...\n", set.Label)

		userAgent := set.UserAgent
		if userAgent == "" {
			userAgent = cfg.UserAgent
		}
		p := pipeline.New(listing.NewHTTPFetcher(userAgent, set.Timeout), &sink.LocalSink{Dir: dir})
		if publisher != nil {
			p.WithPublisher(publisher)
		}

		result, err := p.Run(cmd.Context(), set.Options())
		if err != nil {
			fmt.Fprintf(errOut, "Failed to fetch %s: %v\n", set.Label, err)
			summary.Failed = append(summary.Failed, set.Output)
			say("\n")
			continue
		}

		say("Found %d %s\n", result.Count, set.Label)
		say("Saved %d icons to %s\n", result.Count, set.Output)
		if result.Published != nil && isVerbose(cmd) {
			cmd.PrintErrf("Published to s3://%s/%s\n", result.Published.BucketName, result.Published.Key)
		}
		summary.Refreshed = append(summary.Refreshed, *result)
		say("\n")
	}

	if quiet {
		if err := utils.PrintJSON(out, summary); err != nil {
			return err
		}
	}

	if len(summary.Failed) > 0 {
		failed := strings.Join(summary.Failed, ", ")
		fmt.Fprintf(errOut, "Failed to refresh: %s\n", failed)
		return &ExitError{Code: 1, Err: fmt.Errorf("failed to refresh: %s", failed)}
	}

	say("All icon lists refreshed successfully!\n")
	return nil
}

func init() {
	setsCmd.Flags().StringP("dir", "d", "", "Directory to write list files into (default: current directory)")
}
