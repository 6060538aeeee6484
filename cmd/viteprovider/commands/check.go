package commands

import (
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the manifest exists and contains the default entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, cfg, err := c.provider(cmd)
			if err != nil {
				return err
			}

			c.out.PrintHeader("Vite manifest")

			manifest, err := p.Manifest(cmd.Context(), true)
			if err != nil {
				c.out.PrintError("%s", cfg.ManifestPath)
				return err
			}
			c.out.PrintSuccess("%s (%d entries)", cfg.ManifestPath, len(manifest))

			entries := manifest.EntryPoints()
			slices.Sort(entries)
			for _, name := range entries {
				c.out.PrintFile(name)
			}

			if entry, ok := manifest.Lookup(cfg.DefaultScript); ok {
				c.out.PrintSuccess("script %s -> %s", cfg.DefaultScript, entry.File)
			} else {
				c.out.PrintError("script %s not found", cfg.DefaultScript)
				return cfg.Hint().MissingEntry(cfg.DefaultScript)
			}

			if cfg.DefaultStyle != "" {
				if entry, ok := manifest.Lookup(cfg.DefaultStyle); ok {
					c.out.PrintSuccess("style %s -> %s", cfg.DefaultStyle, entry.File)
				} else {
					c.out.PrintWarning("style %s not found, pages will render without it", cfg.DefaultStyle)
				}
			}

			c.out.PrintDone("OK")
			return nil
		},
	}
}
