package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rutabikini/site/config"
	"github.com/rutabikini/site/handlers"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the landing page HTML",
	Long: `Render the landing page exactly as the server would serve it and write it
to --out, or to stdout when --out is empty. Configuration is read from the
environment (and .env when present).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runRender(afero.NewOsFs(), cfg, renderOut, cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "file to write the page to")
	rootCmd.AddCommand(renderCmd)
}

func runRender(fs afero.Fs, cfg *config.Config, out string, stdout io.Writer) error {
	html, err := handlers.RenderLanding(cfg)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = stdout.Write(html)
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", filepath.Dir(out), err)
	}
	if err := afero.WriteFile(fs, out, html, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%d bytes)\n", out, len(html))
	return nil
}
