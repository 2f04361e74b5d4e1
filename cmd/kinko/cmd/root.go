package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kinko/pms/config"
	"github.com/kinko/pms/internal/logger"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

// NewRootCmd builds the kinko command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kinko",
		Short: "Order entry tools for the Tehran exchanges",
		Long: `Kinko drives the order entry helpers of the portfolio manager
from the command line.

It provides tools for:
  - Searching securities and portfolios with the autocomplete ranking
  - Computing brokerage commission and settlement amounts
  - Browsing the Jalali calendar used by the date pickers

Settings are read from --config, or $KINKO_CONFIG. A .env file in the
working directory is loaded first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file, YAML or JSON (default $KINKO_CONFIG)")

	root.AddCommand(
		newSearchCmd(a),
		newCommissionCmd(a),
		newCalendarCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) load(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	path := a.configPath
	if path == "" {
		path = os.Getenv("KINKO_CONFIG")
	}

	a.cfg = config.Default()
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	}

	level := a.cfg.Log.Level
	if env := os.Getenv("KINKO_LOG_LEVEL"); env != "" {
		level = env
	}
	a.log = logger.New(cmd.ErrOrStderr(), level)
	a.log.Debug("configuration loaded", "path", path, "market", a.cfg.Market())
	return nil
}
