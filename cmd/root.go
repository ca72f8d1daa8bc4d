// Package cmd provides the root command and CLI setup for cnat.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Gnarus-G/cnat/internal/adapter"
	"github.com/Gnarus-G/cnat/internal/controller"
	"github.com/Gnarus-G/cnat/internal/domain"
	m "github.com/Gnarus-G/cnat/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var syntaxAdapter adapter.SyntaxAdapter
var stylesheetAdapter adapter.StylesheetAdapter
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	syntaxAdapter = adapter.NewTreeSitterAdapter()
	stylesheetAdapter = adapter.NewCSSStylesheetAdapter()
	orchestrator = domain.NewOrchestrator(fsAdapter, syntaxAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		stylesheetAdapter,
		ui,
		orchestrator,
	)
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cnat",
		Short: "Scoped class name transformer",
		Long: `cnat applies a prefix to the Tailwind classes used in a JavaScript or
TypeScript project. Only string literals found inside configured scopes are
rewritten and every other byte of the files is left as it was.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML configuration file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
