// cmd/tideboard/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/tideboard/internal/app"
	"github.com/bethropolis/tideboard/internal/config"
	"github.com/bethropolis/tideboard/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd(runEditor)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}

// runFunc starts the editor on filePath with cfg.
type runFunc func(cfg *config.Config, filePath string) error

func newRootCmd(run runFunc) *cobra.Command {
	var flags config.Flags

	root := &cobra.Command{
		Use:           config.AppName + " [file]",
		Short:         "Terminal board editor with undoable drags and edits",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.Version {
				printVersion(cmd)
				return nil
			}

			cfg, cfgErr := config.LoadConfig(flags.ConfigFilePath, &flags)
			if cfg == nil {
				return cfgErr
			}
			logger.SetFilterDebug(flags.DebugLog)
			closer, err := logger.Init(cfg.Logger)
			if err != nil {
				return err
			}
			defer closer.Close()
			if cfgErr != nil {
				logger.Warnf("Config: %v (using defaults)", cfgErr)
			}

			var filePath string
			if len(args) > 0 {
				filePath = args[0]
			}
			logger.Infof("Starting %s %s", config.AppName, config.Version)
			if err := run(cfg, filePath); err != nil {
				logger.Errorf("Application exited with error: %v", err)
				return err
			}
			logger.Infof("%s finished.", config.AppName)
			return nil
		},
	}
	flags.DefineFlags(root.Flags())

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	}
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.Version)
}

func runEditor(cfg *config.Config, filePath string) error {
	a, err := app.NewApp(cfg, filePath)
	if err != nil {
		return fmt.Errorf("error initializing application: %w", err)
	}
	return a.Run()
}
