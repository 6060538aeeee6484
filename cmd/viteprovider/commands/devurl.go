package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

func (c *CLI) newDevURLCmd() *cobra.Command {
	var secure bool

	cmd := &cobra.Command{
		Use:   "dev-url <site-url>",
		Short: "Print the Vite dev server base URL for a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), core.DevServerBaseURL(args[0], secure, cfg.DevPorts))
			return err
		},
	}
	cmd.Flags().BoolVar(&secure, "secure", false, "Use the secure dev server port")

	return cmd
}
