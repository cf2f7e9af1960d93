package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vodvud/shift-svg/config"
	"github.com/vodvud/shift-svg/logger"
	"github.com/vodvud/shift-svg/shift"
)

var (
	configFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shiftsvg",
	Short: "Render shift pie icons as SVG",
	Long: `shiftsvg draws small pie icons for shift keys.

A key is a list of category tokens joined by "_", e.g. am_pm_leave. Each known
token becomes one equal slice filled with its catalog color and labelled with
its glyph; unknown tokens are ignored.

Examples:
  shiftsvg render am_pm           # print the icon
  shiftsvg render night -o n.svg  # save it
  shiftsvg serve                  # GET /?src=am_pm
  shiftsvg catalog                # list known tokens`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(configFile)
		if err != nil {
			return err
		}
		flags := cmd.Root().PersistentFlags()
		if err := v.BindPFlag("log.json", flags.Lookup("log-json")); err != nil {
			return err
		}
		if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
			return err
		}
		if err := v.BindPFlag("catalog.path", flags.Lookup("catalog")); err != nil {
			return err
		}

		cfg, err = config.LoadWithViper(v)
		if err != nil {
			return err
		}
		if err := logger.Initialize(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level}); err != nil {
			return errors.Wrap(err, "initializing logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML catalog replacing the built-in one")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// newRenderer builds a renderer over the configured catalog.
func newRenderer() (*shift.Renderer, error) {
	if cfg == nil || cfg.Catalog.Path == "" {
		return shift.NewRenderer(nil), nil
	}
	c, err := shift.LoadCatalogFile(cfg.Catalog.Path)
	if err != nil {
		return nil, errors.WithHint(err, "check the catalog.path setting or --catalog flag")
	}
	logger.Logger.Debugw("Loaded catalog", "path", cfg.Catalog.Path, "tokens", c.Len())
	return shift.NewRenderer(c), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
