package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/config"
	"github.com/thruflo/tur/internal/logging"
	"github.com/thruflo/tur/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	homeFlag     string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tur",
	Short: "Write and run tape programs against puzzle levels",
	Long: `Tur runs small card-based programs on an infinite binary tape.

Programs are sets of cards. Each card says what to do when the cell under
the head is on or off: write, move, and which card to use next. Levels are
lists of test cases, each an initial tape and a target the halted program
must reach. Programs and levels are YAML documents kept in the tur home.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("tur version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "data directory (default $"+config.HomeEnv+" or the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}

// environment is what commands share: the resolved home, its config and
// the document store.
type environment struct {
	home  string
	cfg   *config.Config
	store *store.Store
}

func loadEnvironment() (*environment, error) {
	home, err := config.Home(homeFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &environment{home: home, cfg: cfg, store: store.NewStore(home)}, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	name := env.cfg.Log.Level
	if logLevelFlag != "" {
		name = logLevelFlag
	}
	lvl, err := logging.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logging.SetLevel(lvl)

	if env.cfg.Log.File != "" {
		if err := logging.OpenFile(env.cfg.Log.File); err != nil {
			return err
		}
	}
	logging.Debug("starting", "command", cmd.CommandPath(), "home", env.home)
	return nil
}
