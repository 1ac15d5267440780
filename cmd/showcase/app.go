package main

import (
	"fmt"
	"os"

	"github.com/rickb777/date/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_ive_go/config"
	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/on-the-ground/pure_ive_go/shape"
)

// App carries the flags and the state shared by the subcommands.
type App struct {
	ConfigPath string
	LogLevel   string

	Config config.Config
	Logger *zap.Logger
	Today  func() date.Date
}

func NewApp() *App {
	return &App{Config: config.Default(), Today: date.Today}
}

func (app *App) RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Walk through containers, shapes, calculators, validation and people",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			log.Sync(app.Logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	app.addRunCommand(rootCmd)
	app.addShapeCommand(rootCmd)

	return rootCmd
}

func (app *App) setup() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.LogLevel != "" {
		cfg.Log.Level = app.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	app.Config = cfg

	if app.Logger == nil {
		logger, err := log.New(cfg.LogLevel(), cfg.Log.Console)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		app.Logger = logger
	}
	app.Logger.Debug("configuration loaded",
		zap.String("path", app.ConfigPath),
		zap.String(config.KeyLogLevel, cfg.Log.Level),
		zap.Uint32(config.KeyMemoTableSize, cfg.Memo.TableSize),
		zap.String(config.KeyMemoStore, cfg.Memo.Store),
		zap.Strings(config.KeyShowcaseSections, cfg.Showcase.Sections),
	)
	return nil
}

func (app *App) addRunCommand(rootCmd *cobra.Command) {
	var sections []string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Print the showcase sections",
		Long: `Print the showcase sections. Without --section every section listed in
the config runs, in the order collection, shapes, calculator, validation,
people, numbers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(sections) > 0 {
				app.Config.Showcase.Sections = sections
				if err := app.Config.Validate(); err != nil {
					return err
				}
			}
			return app.run(cmd.OutOrStdout(), app.Config.Showcase.Sections)
		},
	}
	runCmd.Flags().StringSliceVarP(&sections, "section", "s", nil, "Section to print (repeatable)")

	rootCmd.AddCommand(runCmd)
}

func (app *App) addShapeCommand(rootCmd *cobra.Command) {
	var file string

	shapeCmd := &cobra.Command{
		Use:   "shape",
		Short: "Measure the shapes listed in a YAML document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read shapes: %w", err)
			}
			shapes, err := shape.DecodeYAML(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", file, err)
			}
			app.Logger.Info("decoded shapes", zap.String("file", file), zap.Int("count", len(shapes)))

			out := cmd.OutOrStdout()
			for _, s := range shapes {
				fmt.Fprintln(out, shape.Measure(s))
			}
			return nil
		},
	}
	shapeCmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding a list of shape documents")
	_ = shapeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(shapeCmd)
}
