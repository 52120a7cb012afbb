package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fjson/internal/diagfmt"
	"fjson/internal/driver"
	"fjson/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format .json and .jsonc files",
	Long: `Fmt rewrites files in place in the selected mode. With no paths it
formats the files listed in the nearest fjson.toml manifest.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().String("mode", "", "output mode (annotated|pretty|compact)")
	fmtCmd.Flags().Int("indent", 0, "indent width for annotated and pretty output")
	fmtCmd.Flags().Bool("check", false, "exit non-zero if any file would change, without writing")
	fmtCmd.Flags().Bool("stdout", false, "print formatted content to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted in parallel (0 = all CPUs)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opts, paths, err := resolveFmtConfig(cmd, args)
	if err != nil {
		return err
	}
	opts.Check = check
	opts.Stdout = writeToStdout
	opts.Jobs = jobs
	opts.MaxDiagnostics = maxDiagnostics

	results, err := driver.FormatPaths(cmd.Context(), paths, opts)
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		// warnings (duplicate keys) never fail the run
		if res.Err == nil && res.Bag != nil && res.Bag.Len() > 0 && !quiet {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
		switch {
		case errors.Is(res.Err, driver.ErrSyntax):
			hasErrors = true
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		case res.Err != nil:
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
		case writeToStdout:
			_, _ = os.Stdout.Write(res.Formatted)
		case res.Changed:
			hasChanges = true
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}
		}
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// resolveFmtConfig merges the manifest (if any) with command-line flags;
// flags win. Paths come from the arguments, falling back to the manifest
// include list.
func resolveFmtConfig(cmd *cobra.Command, args []string) (driver.FormatOptions, []string, error) {
	var opts driver.FormatOptions

	manifest, found, err := loadManifest(".")
	if err != nil {
		return opts, nil, err
	}

	mode := format.ModeAnnotated
	indent := 0
	paths := args

	if found {
		if manifest.Config.Format.Mode != "" {
			mode, err = format.ParseMode(manifest.Config.Format.Mode)
			if err != nil {
				return opts, nil, fmt.Errorf("%s: %w", manifest.Path, err)
			}
		}
		indent = manifest.Config.Format.Indent
		opts.MaxDepth = manifest.Config.Format.MaxDepth
		if len(paths) == 0 {
			paths = manifest.IncludePaths()
		}
	}

	if flagMode, _ := cmd.Flags().GetString("mode"); flagMode != "" {
		mode, err = format.ParseMode(flagMode)
		if err != nil {
			return opts, nil, err
		}
	}
	if flagIndent, _ := cmd.Flags().GetInt("indent"); flagIndent > 0 {
		indent = flagIndent
	}

	if len(paths) == 0 {
		return opts, nil, errors.New("fmt: no paths given and no fjson.toml manifest found")
	}

	opts.Options = format.Options{Mode: mode, IndentWidth: indent}
	return opts, paths, nil
}
