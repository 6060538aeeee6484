package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [assets...]",
		Short: "Print the URLs a page would include for the given additional assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := c.provider(cmd)
			if err != nil {
				return err
			}

			resolved, err := p.Resolve(cmd.Context(), args...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, file := range resolved.Styles {
				_, _ = fmt.Fprintf(w, "style  %s\n", p.AssetURL(file))
			}
			for _, file := range resolved.Scripts {
				_, _ = fmt.Fprintf(w, "script %s\n", p.AssetURL(file))
			}
			for _, asset := range resolved.Skipped {
				c.out.PrintWarning("%s is not in the manifest", asset)
			}
			return nil
		},
	}
}
