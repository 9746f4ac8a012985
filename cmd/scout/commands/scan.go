package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/scout/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the packages of an analyzer result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			downloadDir, _ := cmd.Flags().GetString("download-dir")
			scanner, _ := cmd.Flags().GetString("scanner")
			formats, _ := cmd.Flags().GetStringSlice("output-formats")
			scopes, _ := cmd.Flags().GetStringSlice("scopes")
			configPath, _ := cmd.Flags().GetString("config")
			debug, _ := cmd.Flags().GetBool("debug")

			paths, err := c.app.Scan(cmd.Context(), app.ScanOptions{
				InputPath:     input,
				OutputDir:     outputDir,
				ConfigPath:    configPath,
				Debug:         debug,
				DownloadDir:   downloadDir,
				Scanner:       scanner,
				OutputFormats: formats,
				Scopes:        scopes,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range paths {
				_, _ = fmt.Fprintln(out, path)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "Analyzer result file (.json, .yml or .yaml)")
	cmd.Flags().StringP("output-dir", "o", "", "Directory for per-package results and the scan result")
	cmd.Flags().String("download-dir", "", "Directory for downloaded source code (defaults to the output directory)")
	cmd.Flags().StringP("scanner", "s", "", "Scanner backend to use")
	cmd.Flags().StringSliceP("output-formats", "f", nil, "Output formats, for example json,yaml")
	cmd.Flags().StringSlice("scopes", nil, "Only scan dependencies of the given scopes")
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (defaults to scout.yaml if present)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output-dir")
	return cmd
}
