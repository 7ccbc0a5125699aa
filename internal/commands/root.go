package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finansije-dev/finansije/internal/buildinfo"
	"github.com/finansije-dev/finansije/internal/config"
	"github.com/finansije-dev/finansije/internal/logging"
)

// skipConfigLoad marks commands that must run even when the config file is
// unreadable; they get config.Default.
const skipConfigLoad = "skip-config-load"

// app carries state shared by subcommands once the root has loaded config.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "finansije",
		Short:   "Personal account and savings/loan calculator",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "path to config file")

	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newSavingsCommand(a))
	rootCmd.AddCommand(newLoanCommand(a))
	rootCmd.AddCommand(newSectionsCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if _, skip := cmd.Annotations[skipConfigLoad]; !skip {
		loaded, err := config.LoadOrDefault(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.String("currency", cfg.Currency))
	return nil
}
