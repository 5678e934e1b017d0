package cmd

import (
	"fmt"

	"github.com/nfrund/oncampus/cmd/oncampus-cli/internal/output"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/spf13/cobra"
)

func newTransitionsCmd() *cobra.Command {
	var (
		format string
		from   string
	)
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "Print the screen transition table",
		Long: `Print every trigger a session accepts, the screen it starts on and the
screen it leads to.

Examples:
  oncampus-cli transitions
  oncampus-cli transitions --from landing
  oncampus-cli transitions --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := session.Transitions()
			if from != "" {
				screen, err := domain.ParseScreen(from)
				if err != nil {
					return err
				}
				table = session.Available(screen)
			}

			switch format {
			case "json":
				return output.JSON(cmd.OutOrStdout(), table)
			case "table":
				output.TransitionsTable(cmd.OutOrStdout(), table)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().StringVar(&from, "from", "", "Only show triggers that start on this screen")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("from", completeScreens))
	return cmd
}

// completeScreens offers every screen name for flags that take one.
func completeScreens(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	screens := domain.Screens()
	names := make([]string, len(screens))
	for i, s := range screens {
		names[i] = s.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
