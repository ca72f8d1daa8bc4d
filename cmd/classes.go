package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gnarus-G/cnat/internal/adapter"
	"github.com/Gnarus-G/cnat/internal/domain"
	m "github.com/Gnarus-G/cnat/internal/model"
)

var classesInputFlag string

// classesCmd represents the classes command.
var classesCmd = newClassesCmd()

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the class names declared by a css file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := adapter.LoadConfig(configFlag)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			input := config.Input
			if cmd.Flags().Changed("input") {
				input = classesInputFlag
			}

			return workflow.Classes(domain.ClassesArgs{Stylesheet: m.Path(input)})
		},
	}
	cmd.Flags().StringVarP(&classesInputFlag, "input", "i", "", "the css file generated by tailwindcss")

	return cmd
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
