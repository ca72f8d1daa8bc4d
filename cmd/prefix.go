package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gnarus-G/cnat/internal/adapter"
	"github.com/Gnarus-G/cnat/internal/domain"
	m "github.com/Gnarus-G/cnat/internal/model"
)

var prefixInputFlag string
var prefixPrefixFlag string
var prefixScopesFlags []string
var prefixParallelFlag int
var prefixExcludeFlags []string
var prefixExtFlags []string
var prefixDryRunFlag bool
var prefixDiffFlag bool

// prefixCmd represents the prefix command.
var prefixCmd = newPrefixCmd()

const prefixLongDescription = `Apply a prefix to all the Tailwind classes in every js/ts file of a project.

The classes are read from the css file generated by
  npx tailwindcss -i input.css -o output.css

Scopes define where prefixing happens:
  att:className,*ClassName   JSX attributes named className or ending in ClassName
  prop:classes               values of object properties keyed classes
  fn:cva                     arguments of calls to cva

Paths default to the current directory and may be files or directories.`

func newPrefixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix [paths...]",
		Short: "Prefix Tailwind classes in scoped string literals",
		Long:  prefixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := adapter.LoadConfig(configFlag)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return workflow.Prefix(cmd.Context(), resolvePrefixArgs(cmd, config, args))
		},
	}
	cmd.Flags().StringVarP(&prefixInputFlag, "input", "i", "", "the css file generated by tailwindcss")
	cmd.Flags().StringVarP(&prefixPrefixFlag, "prefix", "p", "", "the prefix to apply to the class names found")
	cmd.Flags().StringArrayVarP(&prefixScopesFlags, "scopes", "s", adapter.DefaultScopes, "scopes within which prefixing happens (can be repeated)")
	cmd.Flags().IntVarP(&prefixParallelFlag, "parallel", "j", 1, "number of files processed in parallel")
	cmd.Flags().StringArrayVarP(&prefixExcludeFlags, "exclude", "x", nil, "skip directories with this name (can be repeated)")
	cmd.Flags().StringSliceVar(&prefixExtFlags, "ext", nil, "file extensions to process (default .js,.jsx,.ts,.tsx)")
	cmd.Flags().BoolVar(&prefixDryRunFlag, "dry-run", false, "report the changes without writing files")
	cmd.Flags().BoolVar(&prefixDiffFlag, "diff", false, "print a unified diff of every transformed file")

	return cmd
}

// resolvePrefixArgs layers explicitly set flags over the configuration.
func resolvePrefixArgs(cmd *cobra.Command, config *m.Config, args []string) domain.PrefixArgs {
	flags := cmd.Flags()

	prefixArgs := domain.PrefixArgs{
		Paths:       parsePaths(args),
		Stylesheet:  m.Path(config.Input),
		Prefix:      config.Prefix,
		Scopes:      config.Scopes,
		Extensions:  config.Extensions,
		ExcludeDirs: excludeDirs(config.ExcludeDirs, prefixExcludeFlags),
		Threads:     prefixParallelFlag,
		DryRun:      prefixDryRunFlag,
		Diff:        prefixDiffFlag,
	}

	if flags.Changed("input") {
		prefixArgs.Stylesheet = m.Path(prefixInputFlag)
	}

	if flags.Changed("prefix") {
		prefixArgs.Prefix = prefixPrefixFlag
	}

	if flags.Changed("scopes") {
		prefixArgs.Scopes = prefixScopesFlags
	}

	if flags.Changed("ext") {
		prefixArgs.Extensions = prefixExtFlags
	}

	return prefixArgs
}

// excludeDirs appends the flag values to the configured names. An empty but
// set configuration stays non-nil so the default deny list is not restored.
func excludeDirs(configured, extra []string) []string {
	if configured == nil && len(extra) == 0 {
		return nil
	}

	dirs := make([]string, 0, len(configured)+len(extra))
	dirs = append(dirs, configured...)

	return append(dirs, extra...)
}

func init() {
	rootCmd.AddCommand(prefixCmd)
}
