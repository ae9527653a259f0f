package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"iconlist/config"
	"iconlist/internal/checker"
	"iconlist/internal/iconsets"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate icon names in an editor hook payload",
	Long: `Validate icon names written into Blade templates.

The hook payload is read as JSON from stdin. Only Edit and Write tool calls on
paths containing "resources" with non-empty content are checked; everything
else passes. Icon names are extracted for the chosen framework and compared
with the icon set's list file.

Exit codes: 0 when all icons are valid, 1 on bad input or configuration,
2 when unknown icon names were found.`,
	Example: `  # Validate Flux UI templates against Heroicons
  iconlist check < payload.json

  # Validate Bootstrap templates against Lucide
  iconlist check --iconset=lucide --framework=bootstrap < payload.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	iconSet, _ := cmd.Flags().GetString("iconset")
	framework, _ := cmd.Flags().GetString("framework")
	dir, _ := cmd.Flags().GetString("dir")
	errOut := cmd.ErrOrStderr()

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fail(errOut, 1, fmt.Errorf("read input: %w", err))
	}

	var input checker.HookInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fail(errOut, 1, fmt.Errorf("Invalid JSON input: %w", err))
	}

	if !input.Applies() {
		return nil
	}

	listPath, err := iconListPath(cmd, iconSet)
	if err != nil {
		return fail(errOut, 1, err)
	}

	allowed, usedFallback, err := checker.LoadIconList(joinDir(dir, listPath), joinDir(dir, config.DefaultOutputPath))
	if usedFallback {
		fmt.Fprintf(errOut, "Warning: %s not found, falling back to heroicons\n", listPath)
	}
	if err != nil {
		return fail(errOut, 1, fmt.Errorf("load icon list: %w", err))
	}

	invalid, err := checker.Check(input.ToolInput.Content, framework, allowed)
	if errors.Is(err, checker.ErrUnknownFramework) {
		return fail(errOut, 1, fmt.Errorf("Unknown framework: %s", framework))
	}
	if err != nil {
		return fail(errOut, 1, err)
	}

	if len(invalid) > 0 {
		return fail(errOut, 2, fmt.Errorf("Invalid %s icon names in %s: %s",
			checker.IconSetDisplay(iconSet), checker.FrameworkDisplay(framework), strings.Join(invalid, ", ")))
	}
	return nil
}

// iconListPath resolves the list file for an icon set: the manifest output
// when the set is known, otherwise "<set>-list.txt".
func iconListPath(cmd *cobra.Command, iconSet string) (string, error) {
	manifest, err := iconsets.Load(getManifestPath(cmd))
	if err != nil {
		return "", err
	}
	if set, ok := manifest.Lookup(iconSet); ok {
		return set.Output, nil
	}
	return iconSet + "-list.txt", nil
}

func fail(w io.Writer, code int, err error) error {
	fmt.Fprintf(w, "Error: %v\n", err)
	return &ExitError{Code: code, Err: err}
}

func init() {
	checkCmd.Flags().String("iconset", "heroicons", "Icon set to validate against")
	checkCmd.Flags().String("framework", checker.FrameworkFluxUI, "Template framework: fluxui or bootstrap")
	checkCmd.Flags().StringP("dir", "d", "", "Directory holding the list files (default: current directory)")
}
