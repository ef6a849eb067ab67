package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/spf13/cobra"
)

func stagesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the reference stage profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := nutrients.Profiles()
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), profiles)
			case "table":
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "STAGE\tBASE 500\tBASE 700\tNUTRIENTS\tPH")
				for _, p := range profiles {
					names := make([]string, 0, len(p.Nutrients))
					for _, n := range p.Nutrients {
						names = append(names, fmt.Sprintf("%s %.2fg", n.Nutrient, n.GramsPerGallon))
					}
					fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.1f-%.1f\n",
						p.Label, p.Base500, p.Base700, strings.Join(names, ", "), p.PH.Min, p.PH.Max)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q (json or table)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	return cmd
}
